package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JoeShih716/go-duel-rooms/internal/config"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	"github.com/JoeShih716/go-duel-rooms/internal/infrastructure/persistence/memory"
	"github.com/JoeShih716/go-duel-rooms/internal/infrastructure/persistence/mysql"
	progressmem "github.com/JoeShih716/go-duel-rooms/internal/infrastructure/progress/memory"
	progressredis "github.com/JoeShih716/go-duel-rooms/internal/infrastructure/progress/redis"
	infraRedis "github.com/JoeShih716/go-duel-rooms/internal/infrastructure/redis"
	mysqlpkg "github.com/JoeShih716/go-duel-rooms/pkg/mysql"
	"github.com/JoeShih716/go-duel-rooms/pkg/wss"
)

// ProvideRoomStore selects the Room Store implementation by storage driver.
// The returned cleanup closes any underlying connection.
func ProvideRoomStore(ctx context.Context, cfg *config.Config) (ports.RoomStore, func() error, error) {
	switch cfg.Storage.Driver {
	case config.StorageMySQL:
		client, err := mysqlpkg.NewClient(mysqlpkg.Config{
			Host:            cfg.MySQL.Host,
			Port:            cfg.MySQL.Port,
			User:            cfg.MySQL.User,
			Password:        cfg.MySQL.Password,
			DBName:          cfg.MySQL.DBName,
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.MySQL.ConnMaxLifetimeSec) * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		store := mysql.NewRoomStore(client)
		if err := store.Migrate(ctx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("migrate rooms: %w", err)
		}
		return store, client.Close, nil
	default:
		return memory.NewRoomStore(), func() error { return nil }, nil
	}
}

// ProvideProgress uses the 'progress' Redis DB when available, otherwise keeps snapshots in memory
func ProvideProgress(redisProvider *infraRedis.Provider) (ports.ProgressPublisher, ports.ProgressReader) {
	if redisProvider != nil {
		if client := redisProvider.GetProgress(); client != nil {
			p := progressredis.NewPublisher(client)
			return p, p
		}
	}
	slog.Warn("Redis progress DB unavailable, keeping progress in memory")
	s := progressmem.NewStore()
	return s, s
}

// ProvideWebsocketConfig maps application config to the push server config
func ProvideWebsocketConfig(cfg *config.Config) *wss.Config {
	return &wss.Config{
		AllowedOrigins:  cfg.WSS.AllowedOrigins,
		ReadBufferSize:  cfg.WSS.ReadBufferSize,
		WriteBufferSize: cfg.WSS.WriteBufferSize,
		WriteWait:       time.Duration(cfg.WSS.WriteWaitSec) * time.Second,
		PongWait:        time.Duration(cfg.WSS.PongWaitSec) * time.Second,
		MaxMessageSize:  cfg.WSS.MaxMessageSize,
	}
}
