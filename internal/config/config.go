package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 總配置結構
type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	WSS     WSSConfig     `yaml:"wss"`
	Session SessionConfig `yaml:"session"`
}

type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	Port     int    `yaml:"port"`
	GrpcPort int    `yaml:"grpc_port"` // gRPC Health Port
}

// StorageConfig 房間資料的儲存方式
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory | mysql
}

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type RedisConfig struct {
	Enabled  bool                     `yaml:"enabled"`
	Addr     string                   `yaml:"addr"`
	Password string                   `yaml:"password"`
	DB       map[string]RedisDBConfig `yaml:"db"`
}

type RedisDBConfig struct {
	Index int `yaml:"index"`
}

type MySQLConfig struct {
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	DBName             string `yaml:"dbname"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `yaml:"conn_max_lifetime_sec"`
}

type WSSConfig struct {
	Path            string   `yaml:"path"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	ReadBufferSize  int      `yaml:"read_buffer_size"`
	WriteBufferSize int      `yaml:"write_buffer_size"`
	WriteWaitSec    int      `yaml:"write_wait_sec"`
	PongWaitSec     int      `yaml:"pong_wait_sec"`
	MaxMessageSize  int64    `yaml:"max_message_size"`
}

// SessionConfig 對戰參數
type SessionConfig struct {
	TurnDelayMs int `yaml:"turn_delay_ms"`
	MaxDamage   int `yaml:"max_damage"`
}

// TurnDelay 回合間隔，0 表示使用預設值
func (c SessionConfig) TurnDelay() time.Duration {
	return time.Duration(c.TurnDelayMs) * time.Millisecond
}

// Load 讀取設定檔
// 優先讀取 config/config.yaml，然後使用環境變數覆蓋
func Load(configPath ...string) (*Config, error) {
	// 1. 決定設定檔路徑
	dir := "./config"
	if len(configPath) > 0 {
		dir = configPath[0]
	}
	if env := os.Getenv(EnvConfigDir); env != "" && len(configPath) == 0 {
		dir = env
	}
	fullPath := filepath.Join(dir, "config.yaml")

	var cfg Config

	// 2. 讀取 YAML 檔案
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", fullPath, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml at %s: %w", fullPath, err)
	}

	// 3. 環境變數覆蓋 (Environment Variable Override)
	overrideWithEnv(&cfg)

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageMemory
	}
	switch cfg.Storage.Driver {
	case StorageMemory, StorageMySQL:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) {
	// App
	if env := os.Getenv(EnvAppEnv); env != "" {
		cfg.App.Env = env
	}
	if portVal := os.Getenv(EnvPort); portVal != "" {
		if p, err := strconv.Atoi(portVal); err == nil {
			cfg.App.Port = p
		}
	}
	if grpcPortVal := os.Getenv(EnvGrpcPort); grpcPortVal != "" {
		if p, err := strconv.Atoi(grpcPortVal); err == nil {
			cfg.App.GrpcPort = p
		}
	}

	// Storage
	if val := os.Getenv(EnvStorageDriver); val != "" {
		cfg.Storage.Driver = val
	}

	// MySQL
	if val := os.Getenv(EnvMySQLHost); val != "" {
		cfg.MySQL.Host = val
	}
	if val := os.Getenv(EnvMySQLPassword); val != "" {
		cfg.MySQL.Password = val
	}
	if val := os.Getenv(EnvMySQLUser); val != "" {
		cfg.MySQL.User = val
	}
	if val := os.Getenv(EnvMySQLDB); val != "" {
		cfg.MySQL.DBName = val
	}
	if val := os.Getenv(EnvMySQLPort); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.MySQL.Port = p
		}
	}

	// Redis
	if val := os.Getenv(EnvRedisEnabled); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Redis.Enabled = b
		}
	}
	if val := os.Getenv(EnvRedisAddr); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv(EnvRedisPassword); val != "" {
		cfg.Redis.Password = val
	}

	// Session
	if val := os.Getenv(EnvTurnDelayMs); val != "" {
		if d, err := strconv.Atoi(val); err == nil {
			cfg.Session.TurnDelayMs = d
		}
	}
}
