package wss

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// ErrClientNotFound 指定的連線不存在 (已斷線或從未建立)
var ErrClientNotFound = errors.New("wss: client not found")

// Server 是 websocket package 對外的主要門面 (Facade)，並實現了 http.Handler 介面。
type Server struct {
	hub       *hub
	cfg       *Config
	authorize Authorizer
	logger    *slog.Logger
}

// 確保 Server 實現了 http.Handler 介面
var _ http.Handler = (*Server)(nil)

// NewServer 創建並設定一個完整的 WebSocket 伺服器。
//
// @param ctx - 用於控制伺服器生命週期的上下文，取消時關閉所有連線。
// @param cfg - WebSocket 伺服器的設定參數，未設定的欄位使用預設值。
// @param logger - 用於記錄日誌的 slog 實例。
// @return *Server - 一個初始化完成的 WebSocket 伺服器實例。
func NewServer(ctx context.Context, cfg *Config, logger *slog.Logger) *Server {
	cfg.applyDefaults()

	h := newHub(ctx, logger.With("component", "hub"))
	go h.run()
	return &Server{
		hub:    h,
		cfg:    cfg,
		logger: logger.With("component", "wss_server"),
	}
}

// Register 將一個業務邏輯處理器 (Subscriber) 註冊到 WebSocket 伺服器。
//
// @param subscriber - 實現了 Subscriber 介面的事件處理器。
func (s *Server) Register(subscriber Subscriber) {
	s.hub.registerSubscriber(subscriber)
}

// UseAuthorizer 設定升級前的驗證邏輯，須在開始服務前呼叫。
func (s *Server) UseAuthorizer(fn Authorizer) {
	s.authorize = fn
}

// IsAlive 連線是否仍在線
func (s *Server) IsAlive(connID string) bool {
	_, ok := s.hub.get(connID)
	return ok
}

// Send 推送文字訊息給指定連線
func (s *Server) Send(connID string, text string) error {
	c, ok := s.hub.get(connID)
	if !ok {
		return ErrClientNotFound
	}
	return c.SendMessage([]byte(text))
}

// ForceClose 強制關閉指定連線，連線不存在時視為成功
func (s *Server) ForceClose(connID string, reason string) error {
	c, ok := s.hub.get(connID)
	if !ok {
		return nil
	}
	return c.Kick(reason)
}

// Count 目前在線連線數
func (s *Server) Count() int {
	return s.hub.count()
}

// ServeHTTP 實現 http.Handler 介面，處理 WebSocket 的升級請求。
//
// @param w - http.ResponseWriter，用於寫入 HTTP 回應。
// @param r - *http.Request，收到的 HTTP 請求。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var tags map[string]any
	if s.authorize != nil {
		var err error
		tags, err = s.authorize(r)
		if err != nil {
			s.logger.Debug("websocket authorization failed", "error", err, "remote_addr", r.RemoteAddr)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  s.cfg.ReadBufferSize,
		WriteBufferSize: s.cfg.WriteBufferSize,
		CheckOrigin:     s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	clientLogger := s.logger.With("component", "client")
	client := newConnection(s.hub, conn, r, s.cfg.SendBufferSize, clientLogger)
	for k, v := range tags {
		client.SetTag(k, v)
	}

	if !s.hub.registerClient(client) {
		_ = client.Kick("server shutting down")
		return
	}

	go client.writePump(s.cfg)
	go client.readPump(s.cfg)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	// 如果沒有 Origin 標頭，通常是非瀏覽器請求 (e.g. Server-to-Server)，通常允許
	if origin == "" {
		return true
	}

	// 若未設定 AllowedOrigins，只允許同源
	if len(s.cfg.AllowedOrigins) == 0 {
		return origin == "http://"+r.Host || origin == "https://"+r.Host
	}

	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
