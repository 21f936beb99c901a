package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/JoeShih716/go-duel-rooms/internal/app/api"
	"github.com/JoeShih716/go-duel-rooms/internal/app/connector/handler"
	"github.com/JoeShih716/go-duel-rooms/internal/app/connector/session"
	"github.com/JoeShih716/go-duel-rooms/internal/app/matchmaking"
	"github.com/JoeShih716/go-duel-rooms/internal/app/rooms"
	"github.com/JoeShih716/go-duel-rooms/internal/di"
	"github.com/JoeShih716/go-duel-rooms/internal/infrastructure/push/websocket"
	"github.com/JoeShih716/go-duel-rooms/internal/kit/bootstrap"
	"github.com/JoeShih716/go-duel-rooms/pkg/wss"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env 不存在時沿用系統環境變數
	_ = godotenv.Load()

	// 1. 初始化 App (Config + Logger)
	app := bootstrap.NewApp("arena")
	cfg := app.Config
	logger := app.Logger

	// 2. 儲存層
	store, closeStore, err := di.ProvideRoomStore(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize room store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	redisProvider, err := di.InitializeRedisProvider(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize Redis provider", "error", err)
		os.Exit(1)
	}
	publisher, progressReader := di.ProvideProgress(redisProvider)

	// 3. WebSocket 推播
	wsCtx, cancelWS := context.WithCancel(context.Background())
	wsServer := wss.NewServer(wsCtx, di.ProvideWebsocketConfig(cfg), logger)
	wsServer.UseAuthorizer(api.WebsocketAuthorizer)

	registry := session.NewRegistry(websocket.NewPusher(wsServer), logger)
	wsServer.Register(handler.NewWebsocketHandler(registry, logger))

	// 4. 房間與對戰排程
	roomRepo := rooms.NewRepository(store, logger)
	queue := matchmaking.NewQueue()
	runner := matchmaking.NewRunner(roomRepo, registry, publisher, matchmaking.RunnerConfig{
		TurnDelay: cfg.Session.TurnDelay(),
		MaxDamage: cfg.Session.MaxDamage,
	}, logger)
	dispatcher := matchmaking.NewDispatcher(queue, runner, logger)

	dispatchCtx, cancelDispatch := context.WithCancel(context.Background())
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		if err := dispatcher.Run(dispatchCtx); err != nil {
			logger.Error("Dispatcher stopped", "error", err)
		}
	}()

	// 5. HTTP API
	wsPath := cfg.WSS.Path
	if wsPath == "" {
		wsPath = "/ws"
	}
	router := api.NewRouter(api.NewRoomHandler(roomRepo, queue, progressReader, logger), wsPath, wsServer, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 6. gRPC Health
	health := bootstrap.NewHealthServer(app.Name, logger)

	app.Run(func() error {
		if cfg.App.GrpcPort != 0 {
			go func() {
				if err := health.Listen(cfg.App.GrpcPort); err != nil {
					logger.Error("Health server stopped", "error", err)
				}
			}()
		}
		health.SetServing(true)

		logger.Info("Listening on", "addr", httpServer.Addr, "ws_path", wsPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func() {
		health.SetServing(false)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warn("HTTP shutdown incomplete", "error", err)
		}

		// 停止取新任務並等待進行中的對戰完成
		cancelDispatch()
		<-dispatchDone

		health.Stop()
		cancelWS()

		if redisProvider != nil {
			if err := redisProvider.Close(); err != nil {
				logger.Warn("Failed to close Redis", "error", err)
			}
		}
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close room store", "error", err)
		}
		logger.Info("Pending sessions left in queue", "count", queue.Len())
	})
}
