package domain

import (
	"github.com/google/uuid"
)

// Outcome 房間對戰結果
type Outcome int

const (
	OutcomeNone        Outcome = iota // 尚未結算
	OutcomeHostWon                    // 房主勝
	OutcomeFollowerWon                // 跟隨者勝
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHostWon:
		return "host_won"
	case OutcomeFollowerWon:
		return "follower_won"
	default:
		return "none"
	}
}

// Room 代表一個配對房間。
// 房主建立後不可變；跟隨者與結果各自只會由未設定轉為已設定一次。
type Room struct {
	ID         int64
	HostID     uuid.UUID
	FollowerID *uuid.UUID // nil 表示尚無跟隨者
	Outcome    Outcome
	Version    int64 // 跟隨者欄位的樂觀鎖版本
}

// NewRoom 建立只有房主的新房間
func NewRoom(hostID uuid.UUID) *Room {
	return &Room{
		HostID:  hostID,
		Version: 1,
	}
}

// HasFollower 是否已有跟隨者
func (r *Room) HasFollower() bool {
	return r.FollowerID != nil
}

// Concluded 是否已結算
func (r *Room) Concluded() bool {
	return r.Outcome != OutcomeNone
}

// Clone 回傳深拷貝，避免呼叫端共享指標欄位
func (r *Room) Clone() *Room {
	c := *r
	if r.FollowerID != nil {
		f := *r.FollowerID
		c.FollowerID = &f
	}
	return &c
}
