package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
)

// RoomStore 定義房間資料的持久化介面 (單一資料表: id, host_id, follower_id, outcome, version)
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_room_store.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports RoomStore
type RoomStore interface {
	// Insert 新增房間，成功後回填 room.ID
	Insert(ctx context.Context, room *domain.Room) error

	// FindByID 根據 ID 讀取房間，不存在時回傳 ErrRecordNotFound
	FindByID(ctx context.Context, id int64) (*domain.Room, error)

	// UpdateFollower 僅在版本仍為 expectedVersion 時寫入跟隨者並推進版本，
	// 否則回傳 ErrConcurrencyConflict
	UpdateFollower(ctx context.Context, id int64, followerID uuid.UUID, expectedVersion int64) error

	// UpdateOutcome 僅在結果尚未設定時寫入，否則回傳 ErrConcurrencyConflict
	UpdateOutcome(ctx context.Context, id int64, outcome domain.Outcome) error
}
