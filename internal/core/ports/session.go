package ports

import "context"

// SessionRequester 房間湊滿兩人後請求開局 (不可阻塞、不會失敗)
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_session_requester.go -package=mock_ports github.com/JoeShih716/go-duel-rooms/internal/core/ports SessionRequester
type SessionRequester interface {
	RequestSession(roomID int64)
}

// SessionHandler 執行單一房間的完整對戰流程
type SessionHandler interface {
	HandleSession(ctx context.Context, roomID int64) error
}
