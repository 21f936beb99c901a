package wss

import (
	"context"
	"log/slog"
	"sync"
)

// hub 維護所有已註冊的連線，並依序將連線事件派發給訂閱者。
// 註冊與註銷在同一個 goroutine 處理，所以同一連線的事件順序固定。
type hub struct {
	ctx    context.Context
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*connection

	subMu       sync.RWMutex
	subscribers []Subscriber

	register   chan *connection
	unregister chan *connection
}

func newHub(ctx context.Context, logger *slog.Logger) *hub {
	return &hub{
		ctx:        ctx,
		logger:     logger,
		clients:    make(map[string]*connection),
		register:   make(chan *connection),
		unregister: make(chan *connection),
	}
}

func (h *hub) run() {
	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.id] = c
			count := len(h.clients)
			h.mu.Unlock()

			h.logger.Debug("Client registered", "conn_id", c.id, "remote_addr", c.remoteAddr, "online", count)
			h.forEachSubscriber(func(s Subscriber) { s.OnConnect(c) })
		case c := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[c.id]
			delete(h.clients, c.id)
			count := len(h.clients)
			h.mu.Unlock()

			if !ok {
				continue
			}
			h.logger.Debug("Client unregistered", "conn_id", c.id, "online", count)
			h.forEachSubscriber(func(s Subscriber) { s.OnDisconnect(c) })
		}
	}
}

// registerClient 回傳 false 表示 hub 已停止
func (h *hub) registerClient(c *connection) bool {
	select {
	case h.register <- c:
		return true
	case <-h.ctx.Done():
		return false
	}
}

func (h *hub) unregisterClient(c *connection) {
	select {
	case h.unregister <- c:
	case <-h.ctx.Done():
	}
}

func (h *hub) registerSubscriber(s Subscriber) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	h.subscribers = append(h.subscribers, s)
}

func (h *hub) dispatchMessage(c *connection, msg []byte) {
	h.forEachSubscriber(func(s Subscriber) { s.OnMessage(c, msg) })
}

func (h *hub) forEachSubscriber(fn func(s Subscriber)) {
	h.subMu.RLock()
	subs := make([]Subscriber, len(h.subscribers))
	copy(subs, h.subscribers)
	h.subMu.RUnlock()

	for _, s := range subs {
		fn(s)
	}
}

func (h *hub) get(id string) (*connection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[id]
	return c, ok
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) closeAll() {
	h.mu.Lock()
	clients := make([]*connection, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*connection)
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.Kick("server shutting down")
	}
}
