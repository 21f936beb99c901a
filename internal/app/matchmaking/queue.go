package matchmaking

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

// ensure interface compliance
var _ ports.SessionRequester = (*Queue)(nil)

// Queue 等待開局的房間 ID 佇列 (無上限、FIFO)。
// 生產端 RequestSession 永不阻塞；消費端 TakeNext 阻塞直到有資料或 ctx 取消。
type Queue struct {
	mu    sync.Mutex
	items []int64

	// wake 容量為 1，只表示「可能有資料」
	wake chan struct{}
}

// NewQueue 建立空佇列
func NewQueue() *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
	}
}

// RequestSession 房間湊滿兩人後加入佇列
func (q *Queue) RequestSession(roomID int64) {
	q.mu.Lock()
	q.items = append(q.items, roomID)
	q.mu.Unlock()

	q.signal()
}

// TakeNext 取出下一個房間 ID
//
// 參數:
//
//	ctx: context.Context - 取消時立即返回且不消耗任何資料
//
// 回傳值:
//
//	int64: 房間 ID
//	error: ctx 取消時回傳 ctx.Err()
func (q *Queue) TakeNext(ctx context.Context) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if id, ok := q.pop(); ok {
			return id, nil
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-q.wake:
		}
	}
}

// Len 目前佇列長度
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) pop() (int64, bool) {
	q.mu.Lock()
	if len(q.items) == 0 {
		q.mu.Unlock()
		return 0, false
	}
	id := q.items[0]
	q.items[0] = 0
	q.items = q.items[1:]
	remaining := len(q.items)
	q.mu.Unlock()

	// 仍有資料時轉交訊號給其他消費者
	if remaining > 0 {
		q.signal()
	}
	return id, true
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
