package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/app/connector/handler"
)

// ErrUnauthenticated 請求沒有帶合法的玩家身分
var ErrUnauthenticated = errors.New("missing or malformed player identity")

type playerKey struct{}

// PlayerIDFromRequest 讀取 "Authorization: Bearer <uuid>"，
// 若沒有 header 則改讀 query string 的 token (瀏覽器的 WebSocket 無法自訂 header)
func PlayerIDFromRequest(r *http.Request) (uuid.UUID, error) {
	var token string
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, value, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return uuid.Nil, ErrUnauthenticated
		}
		token = strings.TrimSpace(value)
	} else {
		token = r.URL.Query().Get("token")
	}

	id, err := uuid.Parse(token)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}

// Authenticate 將玩家 ID 放入 request context，失敗時回 401
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID, err := PlayerIDFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), playerKey{}, playerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PlayerFromContext 取得 Authenticate 放入的玩家 ID
func PlayerFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(playerKey{}).(uuid.UUID)
	return id, ok
}

// WebsocketAuthorizer 給 wss.Server 使用，將玩家 ID 寫入連線 tag
func WebsocketAuthorizer(r *http.Request) (map[string]any, error) {
	playerID, err := PlayerIDFromRequest(r)
	if err != nil {
		return nil, err
	}
	return map[string]any{handler.TagPlayerID: playerID}, nil
}
