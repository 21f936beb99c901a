package matchmaking

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// ensure interface compliance
var _ ports.SessionHandler = (*Runner)(nil)

const (
	// DefaultTurnDelay 每回合間隔
	DefaultTurnDelay = time.Second
	// DefaultMaxDamage 單回合最大傷害 (含)
	DefaultMaxDamage = 2
)

// RunnerConfig Session Runner 參數
type RunnerConfig struct {
	TurnDelay time.Duration
	MaxDamage int
}

// DamageSource 回傳 [0, max] 之間的傷害值
type DamageSource func(max int) int

// Option Runner 選項
type Option func(*Runner)

// WithDamageSource 替換亂數來源 (測試用)
func WithDamageSource(src DamageSource) Option {
	return func(r *Runner) {
		r.damage = src
	}
}

// Runner 執行單一房間的完整對戰：
// 讀取房間 -> 逐回合推進並發布進度 -> 記錄勝者 -> 先通知勝者再通知敗者
type Runner struct {
	rooms     ports.RoomRepository
	notifier  ports.PlayerNotifier
	progress  ports.ProgressPublisher
	logger    *slog.Logger
	turnDelay time.Duration
	maxDamage int
	damage    DamageSource
}

// NewRunner 建立 Session Runner
//
// 參數:
//
//	rooms: ports.RoomRepository - 房間讀取與結算
//	notifier: ports.PlayerNotifier - 對戰結果推送
//	progress: ports.ProgressPublisher - 每回合進度發布
//	cfg: RunnerConfig - 零值欄位使用預設值 (TurnDelay 小於 0 視為不等待)
//	logger: *slog.Logger - 日誌
//	opts: ...Option - 選填
func NewRunner(
	rooms ports.RoomRepository,
	notifier ports.PlayerNotifier,
	progress ports.ProgressPublisher,
	cfg RunnerConfig,
	logger *slog.Logger,
	opts ...Option,
) *Runner {
	if cfg.TurnDelay == 0 {
		cfg.TurnDelay = DefaultTurnDelay
	}
	if cfg.MaxDamage <= 0 {
		cfg.MaxDamage = DefaultMaxDamage
	}

	r := &Runner{
		rooms:     rooms,
		notifier:  notifier,
		progress:  progress,
		logger:    logger.With("component", "session_runner"),
		turnDelay: cfg.TurnDelay,
		maxDamage: cfg.MaxDamage,
		damage: func(max int) int {
			return rand.IntN(max + 1)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleSession 執行房間的對戰直到分出勝負
func (r *Runner) HandleSession(ctx context.Context, roomID int64) error {
	room, err := r.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("load room %d: %w", roomID, err)
	}
	if !room.HasFollower() {
		return fmt.Errorf("room %d has no follower: %w", roomID, domain.ErrInvalidState)
	}

	session := domain.NewSession(room.HostID, *room.FollowerID)
	r.logger.Debug("Session created", "room_id", roomID)

	if err := r.runToEnd(ctx, roomID, session); err != nil {
		return err
	}

	winnerID, _ := session.WinnerID()
	loserID, _ := session.LoserID()
	r.logger.Info("Session ended", "room_id", roomID, "winner_id", winnerID)

	if err := r.rooms.SetWinner(ctx, roomID, winnerID); err != nil {
		return fmt.Errorf("save result of room %d: %w", roomID, err)
	}

	if !r.notifier.NotifyOutcome(ctx, winnerID, roomID, true) {
		r.logger.Warn("Outcome not delivered", "room_id", roomID, "player_id", winnerID)
	}
	if !r.notifier.NotifyOutcome(ctx, loserID, roomID, false) {
		r.logger.Warn("Outcome not delivered", "room_id", roomID, "player_id", loserID)
	}
	return nil
}

func (r *Runner) runToEnd(ctx context.Context, roomID int64, session *domain.Session) error {
	turn := 0
	for session.CanAdvance() {
		d1 := r.damage(r.maxDamage)
		d2 := r.damage(r.maxDamage)
		if err := session.Advance(d1, d2); err != nil {
			return fmt.Errorf("advance room %d: %w", roomID, err)
		}
		turn++
		r.logger.Debug("Session advanced", "room_id", roomID, "turn", turn)

		r.publish(ctx, roomID, turn, session)

		if err := r.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) publish(ctx context.Context, roomID int64, turn int, session *domain.Session) {
	hostID, hostHealth := session.Player1()
	followerID, followerHealth := session.Player2()

	err := r.progress.Publish(ctx, domain.Progress{
		RoomID:         roomID,
		Turn:           turn,
		HostID:         hostID,
		HostHealth:     hostHealth,
		FollowerID:     followerID,
		FollowerHealth: followerHealth,
		Finished:       !session.CanAdvance(),
	})
	if err != nil {
		r.logger.Warn("Publish progress failed", "room_id", roomID, "error", err)
	}
}

func (r *Runner) wait(ctx context.Context) error {
	if r.turnDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(r.turnDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
