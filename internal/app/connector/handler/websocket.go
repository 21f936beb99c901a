package handler

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/app/connector/session"
	"github.com/JoeShih716/go-duel-rooms/pkg/wss"
)

// TagPlayerID 升級時由驗證邏輯寫入連線的玩家 ID (uuid.UUID)
const TagPlayerID = "player_id"

// WebsocketHandler 實作 wss.Subscriber 介面，將連線事件轉為玩家連線表的增減
type WebsocketHandler struct {
	registry *session.Registry
	logger   *slog.Logger
}

var _ wss.Subscriber = (*WebsocketHandler)(nil)

// NewWebsocketHandler 建立 WebSocket 事件處理器
func NewWebsocketHandler(registry *session.Registry, logger *slog.Logger) *WebsocketHandler {
	return &WebsocketHandler{
		registry: registry,
		logger:   logger.With("component", "ws_handler"),
	}
}

// OnConnect 當新連線建立時觸發
func (h *WebsocketHandler) OnConnect(conn wss.Client) {
	playerID, ok := h.getPlayerID(conn)
	if !ok {
		h.logger.Warn("Connection without player identity, kicking", "id", conn.ID())
		_ = conn.Kick("missing player identity")
		return
	}

	h.registry.Connect(playerID, conn.ID())
}

// OnDisconnect 當連線斷開時觸發
func (h *WebsocketHandler) OnDisconnect(conn wss.Client) {
	playerID, ok := h.getPlayerID(conn)
	if !ok {
		return
	}

	if !h.registry.Disconnect(playerID, conn.ID()) {
		h.logger.Debug("Superseded connection closed", "id", conn.ID(), "player_id", playerID)
	}
}

// OnMessage 推播通道為單向，客戶端訊息只記錄不處理
func (h *WebsocketHandler) OnMessage(conn wss.Client, msg []byte) {
	h.logger.Debug("Ignoring client message", "id", conn.ID(), "len", len(msg))
}

func (h *WebsocketHandler) getPlayerID(conn wss.Client) (uuid.UUID, bool) {
	val, ok := conn.GetTag(TagPlayerID)
	if !ok {
		return uuid.Nil, false
	}
	playerID, ok := val.(uuid.UUID)
	return playerID, ok
}
