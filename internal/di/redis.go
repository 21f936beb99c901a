package di

import (
	"context"

	"github.com/JoeShih716/go-duel-rooms/internal/config"
	infraRedis "github.com/JoeShih716/go-duel-rooms/internal/infrastructure/redis"
)

// InitializeRedisProvider initializes the Redis provider with config.
// Returns nil when Redis is disabled.
func InitializeRedisProvider(_ context.Context, cfg *config.Config) (*infraRedis.Provider, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	provider, err := infraRedis.NewProvider(cfg.Redis)
	if err != nil {
		return nil, err
	}
	return provider, nil
}
