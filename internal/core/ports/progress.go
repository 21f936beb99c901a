package ports

import (
	"context"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
)

// ProgressPublisher 發布對戰進度快照
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_progress_publisher.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports ProgressPublisher
type ProgressPublisher interface {
	Publish(ctx context.Context, progress domain.Progress) error
}

// ProgressReader 讀取最新的對戰進度快照，沒有資料時回傳 ErrRecordNotFound
type ProgressReader interface {
	Latest(ctx context.Context, roomID int64) (*domain.Progress, error)
}
