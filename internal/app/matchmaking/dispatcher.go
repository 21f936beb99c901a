package matchmaking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// Dispatcher 從佇列取出房間並為每個房間啟動一個對戰 goroutine。
// 收到關閉訊號後停止取件，等待所有進行中的對戰結束才返回。
type Dispatcher struct {
	queue   *Queue
	handler ports.SessionHandler
	logger  *slog.Logger

	// tasks key 由 taskSeq 遞減產生，value 為房間 ID
	tasks   sync.Map
	taskSeq atomic.Int64
	running atomic.Int64
	wg      sync.WaitGroup
}

// NewDispatcher 建立 Session Dispatcher
//
// 參數:
//
//	queue: *Queue - 等待開局的房間佇列
//	handler: ports.SessionHandler - 單一房間的對戰流程
//	logger: *slog.Logger - 日誌
func NewDispatcher(queue *Queue, handler ports.SessionHandler, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:   queue,
		handler: handler,
		logger:  logger.With("component", "dispatcher"),
	}
}

// Run 阻塞執行直到 ctx 取消，並等待進行中的對戰全部完成
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("Session dispatcher started")

	for {
		roomID, err := d.queue.TakeNext(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return err
		}
		d.spawn(ctx, roomID)
	}

	d.logger.Info("Session dispatcher draining", "in_flight", d.InFlight())
	d.wg.Wait()
	d.logger.Info("Session dispatcher stopped")
	return nil
}

// InFlight 目前進行中的對戰數
func (d *Dispatcher) InFlight() int {
	return int(d.running.Load())
}

// RoomsInFlight 目前進行中的房間 ID (無順序)
func (d *Dispatcher) RoomsInFlight() []int64 {
	var ids []int64
	d.tasks.Range(func(_, value any) bool {
		ids = append(ids, value.(int64))
		return true
	})
	return ids
}

func (d *Dispatcher) spawn(ctx context.Context, roomID int64) {
	key := d.taskSeq.Add(-1)
	d.tasks.Store(key, roomID)
	d.running.Add(1)
	d.wg.Add(1)

	// 對戰不受關閉訊號中斷，保留 ctx 的值但脫離其取消
	taskCtx := context.WithoutCancel(ctx)

	go func() {
		defer d.wg.Done()
		defer func() {
			d.tasks.Delete(key)
			d.running.Add(-1)
		}()

		d.logger.Debug("Session task started", "room_id", roomID, "task", key)
		if err := d.runTask(taskCtx, roomID); err != nil {
			d.logger.Error("Session task failed", "room_id", roomID, "error", err)
			return
		}
		d.logger.Debug("Session task finished", "room_id", roomID, "task", key)
	}()
}

func (d *Dispatcher) runTask(ctx context.Context, roomID int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session task panic: %v", r)
		}
	}()
	return d.handler.HandleSession(ctx, roomID)
}
