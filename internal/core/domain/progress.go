package domain

import "github.com/google/uuid"

// Progress 對戰進行中的快照，每回合發布一次供觀戰端查詢
type Progress struct {
	RoomID         int64     `json:"room_id"`
	Turn           int       `json:"turn"`
	HostID         uuid.UUID `json:"host_id"`
	HostHealth     int       `json:"host_health"`
	FollowerID     uuid.UUID `json:"follower_id"`
	FollowerHealth int       `json:"follower_health"`
	Finished       bool      `json:"finished"`
}
