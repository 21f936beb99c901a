package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// NewRouter 組出 HTTP 路由
//
// 參數:
//
//	rooms: *RoomHandler - 房間 API
//	wsPath: string - 推播通道路徑
//	ws: http.Handler - 推播通道 (wss.Server，自行處理驗證)
//	logger: *slog.Logger - 存取日誌
func NewRouter(rooms *RoomHandler, wsPath string, ws http.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))

	r.Group(func(r chi.Router) {
		r.Use(Authenticate)

		r.Post("/rooms", rooms.CreateRoom)
		r.Post("/rooms/{roomID}/join", rooms.JoinRoom)
		r.Get("/rooms/{roomID}", rooms.GetRoom)
		r.Get("/rooms/{roomID}/progress", rooms.GetProgress)
	})

	if ws != nil {
		r.Handle(wsPath, ws)
	}
	return r
}

func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With("component", "http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
