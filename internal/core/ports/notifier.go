package ports

import (
	"context"

	"github.com/google/uuid"
)

// PlayerNotifier 將對戰結果推送給玩家目前的連線
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_player_notifier.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports PlayerNotifier
type PlayerNotifier interface {
	// NotifyOutcome 回傳是否送達；玩家離線不是錯誤
	NotifyOutcome(ctx context.Context, playerID uuid.UUID, roomID int64, won bool) bool
}
