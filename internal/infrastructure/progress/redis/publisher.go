package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	pkgRedis "github.com/JoeShih716/go-duel-rooms/pkg/redis"
)

// SnapshotTTL 進度快照的保存時間
const SnapshotTTL = 10 * time.Minute

var (
	_ ports.ProgressPublisher = (*Publisher)(nil)
	_ ports.ProgressReader    = (*Publisher)(nil)
)

// Client 是 pkg/redis.Client 中 Publisher 使用到的部分
type Client interface {
	SetStruct(ctx context.Context, key string, value any, expiration ...time.Duration) error
	GetStruct(ctx context.Context, key string, dest any) error
	Publish(ctx context.Context, channel string, message any) error
}

// Publisher 將對戰進度寫入 Redis 並發布到同名頻道
//
// Key / Channel: room:{id}:progress
type Publisher struct {
	client Client
}

// NewPublisher 建立 Redis 進度發布器
func NewPublisher(client Client) *Publisher {
	return &Publisher{client: client}
}

// Key 房間進度的 Redis 鍵，同時也是發布頻道
func Key(roomID int64) string {
	return fmt.Sprintf("room:%d:progress", roomID)
}

func (p *Publisher) Publish(ctx context.Context, progress domain.Progress) error {
	key := Key(progress.RoomID)
	if err := p.client.SetStruct(ctx, key, progress, SnapshotTTL); err != nil {
		return fmt.Errorf("store progress: %w", err)
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := p.client.Publish(ctx, key, data); err != nil {
		return fmt.Errorf("publish progress: %w", err)
	}
	return nil
}

func (p *Publisher) Latest(ctx context.Context, roomID int64) (*domain.Progress, error) {
	var progress domain.Progress
	if err := p.client.GetStruct(ctx, Key(roomID), &progress); err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return nil, fmt.Errorf("progress of room %d: %w", roomID, ports.ErrRecordNotFound)
		}
		return nil, err
	}
	return &progress, nil
}
