package rooms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// ensure interface compliance
var _ ports.RoomRepository = (*Repository)(nil)

// Repository 實作 ports.RoomRepository
// 房間規則在此判斷，持久化與條件寫入交給 ports.RoomStore。
type Repository struct {
	store  ports.RoomStore
	logger *slog.Logger
}

// NewRepository 建立 Rooms Repository
//
// 參數:
//
//	store: ports.RoomStore - 房間持久化實作 (MySQL 或記憶體)
//	logger: *slog.Logger - 日誌
//
// 回傳值:
//
//	*Repository: 房間業務操作實例
func NewRepository(store ports.RoomStore, logger *slog.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger.With("component", "rooms"),
	}
}

// CreateRoom 建立只有房主的新房間
func (r *Repository) CreateRoom(ctx context.Context, hostID uuid.UUID) (int64, error) {
	room := domain.NewRoom(hostID)
	if err := r.store.Insert(ctx, room); err != nil {
		return 0, fmt.Errorf("create room: %w", err)
	}

	r.logger.Info("Room created", "room_id", room.ID, "host_id", hostID)
	return room.ID, nil
}

// GetRoom 取得房間快照
func (r *Repository) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := r.store.FindByID(ctx, roomID)
	if err != nil {
		return nil, mapStoreError(roomID, err)
	}
	return room, nil
}

// JoinRoom 以跟隨者身分加入房間。
// 寫入條件為讀取時的版本號；併發加入時落敗的一方得到 ErrRoomIsFull，不重試。
func (r *Repository) JoinRoom(ctx context.Context, roomID int64, followerID uuid.UUID) error {
	room, err := r.store.FindByID(ctx, roomID)
	if err != nil {
		return mapStoreError(roomID, err)
	}

	if room.HostID == followerID {
		return fmt.Errorf("join room %d: %w", roomID, domain.ErrJoinOwnRoom)
	}
	if room.HasFollower() {
		return fmt.Errorf("join room %d: %w", roomID, domain.ErrRoomIsFull)
	}

	if err := r.store.UpdateFollower(ctx, roomID, followerID, room.Version); err != nil {
		if errors.Is(err, ports.ErrConcurrencyConflict) {
			return fmt.Errorf("join room %d: %w", roomID, domain.ErrRoomIsFull)
		}
		return mapStoreError(roomID, err)
	}

	r.logger.Info("Room joined", "room_id", roomID, "follower_id", followerID)
	return nil
}

// SetWinner 記錄對戰結果，winnerID 必須是房主或跟隨者
func (r *Repository) SetWinner(ctx context.Context, roomID int64, winnerID uuid.UUID) error {
	room, err := r.store.FindByID(ctx, roomID)
	if err != nil {
		return mapStoreError(roomID, err)
	}

	if room.Concluded() {
		return fmt.Errorf("room %d has already concluded: %w", roomID, domain.ErrInvalidState)
	}
	// 結果只能在跟隨者加入後寫入
	if !room.HasFollower() {
		return fmt.Errorf("room %d has no follower: %w", roomID, domain.ErrInvalidState)
	}

	var outcome domain.Outcome
	switch {
	case winnerID == room.HostID:
		outcome = domain.OutcomeHostWon
	case winnerID == *room.FollowerID:
		outcome = domain.OutcomeFollowerWon
	default:
		return fmt.Errorf("winner %s is not in room %d: %w", winnerID, roomID, domain.ErrInvalidArgument)
	}

	if err := r.store.UpdateOutcome(ctx, roomID, outcome); err != nil {
		if errors.Is(err, ports.ErrConcurrencyConflict) {
			return fmt.Errorf("room %d has already concluded: %w", roomID, domain.ErrInvalidState)
		}
		return mapStoreError(roomID, err)
	}

	r.logger.Info("Room concluded", "room_id", roomID, "outcome", outcome.String())
	return nil
}

func mapStoreError(roomID int64, err error) error {
	if errors.Is(err, ports.ErrRecordNotFound) {
		return fmt.Errorf("room %d: %w", roomID, domain.ErrRoomNotFound)
	}
	return fmt.Errorf("room %d: %w", roomID, err)
}
