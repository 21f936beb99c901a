package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config 定義 MySQL 連線配置
type Config struct {
	Host     string // MySQL 主機
	Port     int    // MySQL Port
	User     string // 使用者
	Password string // 密碼
	DBName   string // 資料庫名稱

	MaxOpenConns    int           // 最大連線數 (0 表示使用預設值)
	MaxIdleConns    int           // 最大閒置連線數
	ConnMaxLifetime time.Duration // 連線最長存活時間
}

// DSN 組出 go-sql-driver 格式的連線字串
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Client 封裝 gorm.DB 以提供連線池管理
type Client struct {
	db *gorm.DB
}

// NewClient 建立並回傳一個新的 MySQL 客戶端實例
//
// 參數:
//
//	cfg: Config - MySQL 連線配置資訊
//
// 回傳值:
//
//	*Client: 封裝後的 MySQL 客戶端實例
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config) (*Client, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// 測試連線
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	return &Client{db: db}, nil
}

// DB 回傳底層 gorm.DB，呼叫端應搭配 WithContext 使用
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close 關閉 MySQL 連線池
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
