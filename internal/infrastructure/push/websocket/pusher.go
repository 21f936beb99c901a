package websocket

import (
	"errors"
	"fmt"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	"github.com/JoeShih716/go-duel-rooms/pkg/wss"
)

// ensure interface compliance
var _ ports.PushService = (*Pusher)(nil)

// Transport 是 wss.Server 提供給推播使用的能力
type Transport interface {
	IsAlive(connID string) bool
	Send(connID string, text string) error
	ForceClose(connID string, reason string) error
}

// Pusher 將 WebSocket 伺服器轉接為 ports.PushService
type Pusher struct {
	transport Transport
}

// NewPusher 建立推播轉接器 (通常傳入 *wss.Server)
func NewPusher(transport Transport) *Pusher {
	return &Pusher{transport: transport}
}

func (p *Pusher) IsAlive(connID string) bool {
	return p.transport.IsAlive(connID)
}

func (p *Pusher) Send(connID string, text string) error {
	if err := p.transport.Send(connID, text); err != nil {
		if errors.Is(err, wss.ErrClientNotFound) || errors.Is(err, wss.ErrConnectionClosed) {
			return fmt.Errorf("send to %s: %w", connID, ports.ErrConnectionGone)
		}
		return fmt.Errorf("send to %s: %w", connID, err)
	}
	return nil
}

func (p *Pusher) ForceClose(connID string, reason string) error {
	return p.transport.ForceClose(connID, reason)
}
