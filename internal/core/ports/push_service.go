package ports

// PushService 定義推播通道的最小能力 (由 WebSocket 伺服器實作)
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_push_service.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports PushService
type PushService interface {
	// IsAlive 連線是否仍存在
	IsAlive(connID string) bool

	// Send 推送文字訊息，連線不存在時回傳 ErrConnectionGone
	Send(connID string, text string) error

	// ForceClose 強制關閉連線
	ForceClose(connID string, reason string) error
}
