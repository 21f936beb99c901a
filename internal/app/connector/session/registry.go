package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// ensure interface compliance
var _ ports.PlayerNotifier = (*Registry)(nil)

// Registry 維護每位玩家目前唯一有效的推播連線，並負責單播通知。
// 同一玩家重複連線時以最後一條為準，舊連線會被強制關閉。
type Registry struct {
	entries sync.Map // Map[uuid.UUID]string (playerID -> connID)
	count   atomic.Int64

	// mu 只保護「取代舊連線」與「舊連線自我清除」這兩段 compare-then-act
	mu sync.Mutex

	push   ports.PushService
	logger *slog.Logger
}

// NewRegistry 建立玩家連線表
//
// 參數:
//
//	push: ports.PushService - 推播通道
//	logger: *slog.Logger - 日誌
func NewRegistry(push ports.PushService, logger *slog.Logger) *Registry {
	return &Registry{
		push:   push,
		logger: logger.With("component", "connection_registry"),
	}
}

// Connect 記錄玩家的新連線，若已有舊連線則取代並強制關閉
func (r *Registry) Connect(playerID uuid.UUID, connID string) {
	r.mu.Lock()
	prev, loaded := r.entries.Swap(playerID, connID)
	if !loaded {
		r.count.Add(1)
	}
	r.mu.Unlock()

	if !loaded {
		r.logger.Info("Player connected", "player_id", playerID, "conn_id", connID, "online", r.Count())
		return
	}

	prevID := prev.(string)
	if prevID == connID {
		return
	}

	// 在鎖外關閉，關閉回呼會再進入 Disconnect
	r.logger.Info("Player reconnected, closing superseded connection",
		"player_id", playerID, "conn_id", connID, "superseded", prevID)
	if err := r.push.ForceClose(prevID, "superseded by a newer connection"); err != nil {
		r.logger.Warn("Force close failed", "conn_id", prevID, "error", err)
	}
}

// Disconnect 僅在目前記錄的連線仍是 connID 時移除；已被取代則不動作
//
// 回傳值:
//
//	bool: 是否真的移除了記錄
func (r *Registry) Disconnect(playerID uuid.UUID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.entries.Load(playerID)
	if !ok || current.(string) != connID {
		return false
	}

	r.entries.Delete(playerID)
	r.count.Add(-1)
	r.logger.Info("Player disconnected", "player_id", playerID, "conn_id", connID, "online", r.count.Load())
	return true
}

// Lookup 取得玩家目前的連線 ID
func (r *Registry) Lookup(playerID uuid.UUID) (string, bool) {
	val, ok := r.entries.Load(playerID)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// Count 取得當前在線玩家數
func (r *Registry) Count() int64 {
	return r.count.Load()
}

// Notify 推送 payload 給玩家目前的連線。
// 玩家不在線或連線已消失時回傳 false，不視為錯誤。
func (r *Registry) Notify(playerID uuid.UUID, payload string) bool {
	connID, ok := r.Lookup(playerID)
	if !ok || !r.push.IsAlive(connID) {
		r.logger.Warn("Cannot notify player, not connected", "player_id", playerID)
		return false
	}

	if err := r.push.Send(connID, payload); err != nil {
		if errors.Is(err, ports.ErrConnectionGone) {
			r.logger.Warn("Cannot notify player, connection gone", "player_id", playerID, "conn_id", connID)
		} else {
			r.logger.Warn("Notify failed", "player_id", playerID, "conn_id", connID, "error", err)
		}
		return false
	}
	return true
}

// NotifyOutcome 推送對戰結果，格式為 "{roomId}: {true|false}"
func (r *Registry) NotifyOutcome(_ context.Context, playerID uuid.UUID, roomID int64, won bool) bool {
	return r.Notify(playerID, OutcomePayload(roomID, won))
}

// OutcomePayload 對戰結果的推播內容
func OutcomePayload(roomID int64, won bool) string {
	return fmt.Sprintf("%d: %t", roomID, won)
}
