package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// ensure interface compliance
var _ ports.RoomStore = (*RoomStore)(nil)

// RoomStore 單機記憶體版 Room Store (local 環境與測試用)
// 與 MySQL 版本具有相同的 version 條件寫入語意。
type RoomStore struct {
	mu     sync.Mutex
	rooms  map[int64]*domain.Room
	nextID int64
}

// NewRoomStore 建立空的記憶體 Room Store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[int64]*domain.Room),
	}
}

// Insert 寫入新房間並指派 ID
func (s *RoomStore) Insert(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	room.ID = s.nextID
	if room.Version == 0 {
		room.Version = 1
	}
	s.rooms[room.ID] = room.Clone()
	return nil
}

// FindByID 取得房間快照，不存在時回傳 ports.ErrRecordNotFound
func (s *RoomStore) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", id, ports.ErrRecordNotFound)
	}
	return room.Clone(), nil
}

// UpdateFollower 僅在 version 未變動時寫入跟隨者
func (s *RoomStore) UpdateFollower(ctx context.Context, id int64, followerID uuid.UUID, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return fmt.Errorf("room %d: %w", id, ports.ErrRecordNotFound)
	}
	if room.Version != expectedVersion {
		return fmt.Errorf("room %d version %d: %w", id, expectedVersion, ports.ErrConcurrencyConflict)
	}

	follower := followerID
	room.FollowerID = &follower
	room.Version++
	return nil
}

// UpdateOutcome 僅在結果尚未設定時寫入
func (s *RoomStore) UpdateOutcome(ctx context.Context, id int64, outcome domain.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return fmt.Errorf("room %d: %w", id, ports.ErrRecordNotFound)
	}
	if room.Outcome != domain.OutcomeNone {
		return fmt.Errorf("room %d outcome: %w", id, ports.ErrConcurrencyConflict)
	}

	room.Outcome = outcome
	return nil
}
