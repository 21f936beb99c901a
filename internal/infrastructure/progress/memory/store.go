package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

var (
	_ ports.ProgressPublisher = (*Store)(nil)
	_ ports.ProgressReader    = (*Store)(nil)
)

// Store 在記憶體中保留每個房間最新的進度快照 (未啟用 Redis 時使用)
type Store struct {
	mu     sync.RWMutex
	latest map[int64]domain.Progress
}

func NewStore() *Store {
	return &Store{latest: make(map[int64]domain.Progress)}
}

func (s *Store) Publish(_ context.Context, progress domain.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[progress.RoomID] = progress
	return nil
}

func (s *Store) Latest(_ context.Context, roomID int64) (*domain.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	progress, ok := s.latest[roomID]
	if !ok {
		return nil, fmt.Errorf("progress of room %d: %w", roomID, ports.ErrRecordNotFound)
	}
	return &progress, nil
}
