package wss

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var (
	// ErrConnectionClosed 連線已關閉
	ErrConnectionClosed = errors.New("wss: connection closed")
	// ErrSendBufferFull 待送佇列已滿 (客戶端讀取過慢)
	ErrSendBufferFull = errors.New("wss: send buffer full")
)

// Client 是業務層看到的單一連線
//
//go:generate mockgen -destination=../../test/mocks/pkg/wss/mock_client.go -package=mock_wss github.com/JoeShih716/go-duel-rooms/pkg/wss Client
type Client interface {
	// ID 連線唯一識別碼
	ID() string
	// SendMessage 將文字訊息放入待送佇列
	SendMessage(msg []byte) error
	// Kick 送出 Close 訊框後關閉連線
	Kick(reason string) error
	// SetTag 附加自訂資料
	SetTag(key string, value any)
	// GetTag 讀取自訂資料
	GetTag(key string) (any, bool)
}

// connection 是 Client 的實作，一條連線對應一組 readPump / writePump
type connection struct {
	id         string
	remoteAddr string
	hub        *hub
	conn       *websocket.Conn
	send       chan []byte
	done       chan struct{}
	closeOnce  sync.Once
	tags       sync.Map
	logger     *slog.Logger
}

var _ Client = (*connection)(nil)

func newConnection(h *hub, conn *websocket.Conn, r *http.Request, sendBuffer int, logger *slog.Logger) *connection {
	id := uuid.NewString()
	return &connection{
		id:         id,
		remoteAddr: r.RemoteAddr,
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
		logger:     logger.With("conn_id", id),
	}
}

func (c *connection) ID() string {
	return c.id
}

func (c *connection) SendMessage(msg []byte) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	default:
	}

	select {
	case <-c.done:
		return ErrConnectionClosed
	case c.send <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (c *connection) Kick(reason string) error {
	var err error
	c.closeOnce.Do(func() {
		c.logger.Info("Kicking connection", "reason", reason)
		msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
		// WriteControl 可與其他寫入並行呼叫
		err = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		close(c.done)
		_ = c.conn.Close()
	})
	if errors.Is(err, websocket.ErrCloseSent) {
		return nil
	}
	return err
}

func (c *connection) SetTag(key string, value any) {
	c.tags.Store(key, value)
}

func (c *connection) GetTag(key string) (any, bool) {
	return c.tags.Load(key)
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// readPump 讀取客戶端訊息直到連線結束，結束時向 hub 註銷
func (c *connection) readPump(cfg *Config) {
	defer func() {
		c.hub.unregisterClient(c)
		c.close()
	}()

	c.conn.SetReadLimit(cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.logger.Warn("Unexpected close", "error", err)
			}
			return
		}
		c.hub.dispatchMessage(c, msg)
	}
}

// writePump 是唯一寫入資料訊框的 goroutine
func (c *connection) writePump(cfg *Config) {
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
