package wss

import (
	"net/http"
	"time"
)

// Config 定義 WebSocket 伺服器的參數
type Config struct {
	AllowedOrigins  []string      // 允許的跨域來源，"*" 表示全部允許
	ReadBufferSize  int           // 升級時的讀取緩衝區大小
	WriteBufferSize int           // 升級時的寫入緩衝區大小
	WriteWait       time.Duration // 單次寫入的逾時
	PongWait        time.Duration // 等待 Pong 的逾時
	PingPeriod      time.Duration // 送出 Ping 的間隔，須小於 PongWait
	MaxMessageSize  int64         // 允許接收的最大訊息長度
	SendBufferSize  int           // 每條連線的待送訊息佇列長度
}

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 4096
	defaultSendBufferSize = 32
)

func (c *Config) applyDefaults() {
	if c.WriteWait <= 0 {
		c.WriteWait = defaultWriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = defaultPongWait
	}
	// 如果 PingPeriod 沒有被設定，則根據 PongWait 計算一個合理的值
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = (c.PongWait * 9) / 10
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}
	if c.SendBufferSize <= 0 {
		c.SendBufferSize = defaultSendBufferSize
	}
}

// Authorizer 在升級前驗證請求，回傳的 tags 會附加到新連線上。
// 回傳錯誤時以 401 拒絕升級。
type Authorizer func(r *http.Request) (map[string]any, error)
