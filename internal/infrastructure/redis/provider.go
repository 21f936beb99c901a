package redis

import (
	"fmt"
	"log/slog"

	"github.com/JoeShih716/go-duel-rooms/internal/config"
	pkgRedis "github.com/JoeShih716/go-duel-rooms/pkg/redis"
)

type DBName string

const (
	DBNameProgress DBName = "progress"
)

// DBSupplier defines the interface for retrieving specific Redis DB clients
type DBSupplier interface {
	GetProgress() *pkgRedis.Client
	Close() error
}

type Provider struct {
	databases map[DBName]*pkgRedis.Client
}

// NewProvider creates clients for all configured redis databases
func NewProvider(cfg config.RedisConfig) (*Provider, error) {
	clients := make(map[DBName]*pkgRedis.Client)

	for dbKey, dbConfig := range cfg.DB {
		// Combine global settings (Addr, Password) with specific DB index
		client, err := pkgRedis.NewClient(pkgRedis.Config{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       dbConfig.Index,
		})
		if err != nil {
			// If one fails, close already created ones and return error
			for _, c := range clients {
				_ = c.Close()
			}
			return nil, fmt.Errorf("failed to init redis db '%s': %w", dbKey, err)
		}

		clients[DBName(dbKey)] = client
	}

	return &Provider{databases: clients}, nil
}

func (p *Provider) GetProgress() *pkgRedis.Client {
	if client, ok := p.databases[DBNameProgress]; ok {
		return client
	}
	slog.Warn("Redis Progress DB not found in config")
	return nil
}

func (p *Provider) Close() error {
	for _, client := range p.databases {
		_ = client.Close()
	}
	return nil
}
