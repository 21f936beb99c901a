package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	mysqlpkg "github.com/JoeShih716/go-duel-rooms/pkg/mysql"
)

// ensure interface compliance
var _ ports.RoomStore = (*RoomStore)(nil)

// roomRecord 對應 rooms 資料表
type roomRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	HostID     string    `gorm:"type:char(36);not null"`
	FollowerID *string   `gorm:"type:char(36)"`
	Outcome    int       `gorm:"not null;default:0"`
	Version    int64     `gorm:"not null;default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (roomRecord) TableName() string {
	return "rooms"
}

func newRoomRecord(room *domain.Room) *roomRecord {
	rec := &roomRecord{
		ID:      room.ID,
		HostID:  room.HostID.String(),
		Outcome: int(room.Outcome),
		Version: room.Version,
	}
	if room.FollowerID != nil {
		f := room.FollowerID.String()
		rec.FollowerID = &f
	}
	return rec
}

func (r *roomRecord) toDomain() (*domain.Room, error) {
	hostID, err := uuid.Parse(r.HostID)
	if err != nil {
		return nil, fmt.Errorf("room %d host_id: %w", r.ID, err)
	}

	room := &domain.Room{
		ID:      r.ID,
		HostID:  hostID,
		Outcome: domain.Outcome(r.Outcome),
		Version: r.Version,
	}
	if r.FollowerID != nil {
		followerID, err := uuid.Parse(*r.FollowerID)
		if err != nil {
			return nil, fmt.Errorf("room %d follower_id: %w", r.ID, err)
		}
		room.FollowerID = &followerID
	}
	return room, nil
}

// RoomStore 實作 ports.RoomStore (gorm + MySQL)
// 跟隨者寫入使用 version 欄位做樂觀鎖。
type RoomStore struct {
	client *mysqlpkg.Client
}

// NewRoomStore 建立 MySQL Room Store
func NewRoomStore(client *mysqlpkg.Client) *RoomStore {
	return &RoomStore{
		client: client,
	}
}

// Migrate 建立或更新 rooms 資料表
func (s *RoomStore) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&roomRecord{})
}

// Insert 新增房間並回填自動遞增 ID
func (s *RoomStore) Insert(ctx context.Context, room *domain.Room) error {
	if room.Version == 0 {
		room.Version = 1
	}
	rec := newRoomRecord(room)
	if err := s.client.DB().WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	room.ID = rec.ID
	return nil
}

// FindByID 根據 ID 讀取房間
func (s *RoomStore) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	var rec roomRecord
	err := s.client.DB().WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ports.ErrRecordNotFound)
		}
		return nil, err
	}
	return rec.toDomain()
}

// UpdateFollower UPDATE ... WHERE id = ? AND version = ?，影響 0 列即視為衝突
func (s *RoomStore) UpdateFollower(ctx context.Context, id int64, followerID uuid.UUID, expectedVersion int64) error {
	db := s.client.DB().WithContext(ctx)
	res := db.Model(&roomRecord{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"follower_id": followerID.String(),
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.missOrConflict(db, id, fmt.Sprintf("version %d", expectedVersion))
	}
	return nil
}

// UpdateOutcome UPDATE ... WHERE id = ? AND outcome = 0
func (s *RoomStore) UpdateOutcome(ctx context.Context, id int64, outcome domain.Outcome) error {
	db := s.client.DB().WithContext(ctx)
	res := db.Model(&roomRecord{}).
		Where("id = ? AND outcome = ?", id, int(domain.OutcomeNone)).
		Update("outcome", int(outcome))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.missOrConflict(db, id, "outcome")
	}
	return nil
}

// missOrConflict 區分條件更新落空的原因：資料不存在或條件已不成立
func (s *RoomStore) missOrConflict(db *gorm.DB, id int64, what string) error {
	var count int64
	if err := db.Model(&roomRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("room %d: %w", id, ports.ErrRecordNotFound)
	}
	return fmt.Errorf("room %d %s: %w", id, what, ports.ErrConcurrencyConflict)
}
