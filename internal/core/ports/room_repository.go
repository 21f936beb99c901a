package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
)

// RoomRepository 定義房間的業務操作。
// 儲存層的併發衝突在此轉換為領域錯誤，不會原樣外洩。
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_room_repository.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports RoomRepository
type RoomRepository interface {
	// CreateRoom 建立房間並回傳 ID
	CreateRoom(ctx context.Context, hostID uuid.UUID) (int64, error)

	// JoinRoom 以跟隨者身分加入房間
	// 可能回傳 domain.ErrRoomNotFound, domain.ErrJoinOwnRoom, domain.ErrRoomIsFull
	JoinRoom(ctx context.Context, roomID int64, followerID uuid.UUID) error

	// GetRoom 取得房間
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)

	// SetWinner 記錄對戰結果
	SetWinner(ctx context.Context, roomID int64, winnerID uuid.UUID) error
}
