package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

func insertRoom(t *testing.T, store *RoomStore) *domain.Room {
	t.Helper()
	room := domain.NewRoom(uuid.New())
	require.NoError(t, store.Insert(context.Background(), room))
	require.NotZero(t, room.ID)
	return room
}

func TestRoomStore_InsertAndFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	room := insertRoom(t, store)

	got, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.HostID, got.HostID)
	assert.False(t, got.HasFollower())
	assert.Equal(t, domain.OutcomeNone, got.Outcome)
	assert.Equal(t, int64(1), got.Version)

	_, err = store.FindByID(ctx, room.ID+1000)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestRoomStore_UpdateFollower(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	room := insertRoom(t, store)
	followerID := uuid.New()

	require.NoError(t, store.UpdateFollower(ctx, room.ID, followerID, room.Version))

	got, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	require.True(t, got.HasFollower())
	assert.Equal(t, followerID, *got.FollowerID)
	assert.Equal(t, room.Version+1, got.Version)

	// 舊版本號的寫入必須失敗且不覆蓋
	err = store.UpdateFollower(ctx, room.ID, uuid.New(), room.Version)
	assert.ErrorIs(t, err, ports.ErrConcurrencyConflict)

	got, err = store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, followerID, *got.FollowerID)
}

func TestRoomStore_UpdateFollower_Missing(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateFollower(context.Background(), 4242, uuid.New(), 1)

	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
	assert.NotErrorIs(t, err, ports.ErrConcurrencyConflict)
}

func TestRoomStore_UpdateFollower_ConcurrentSameVersion(t *testing.T) {
	store := newTestStore(t)
	room := insertRoom(t, store)

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.UpdateFollower(context.Background(), room.ID, uuid.New(), room.Version)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ports.ErrConcurrencyConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)
}

func TestRoomStore_UpdateOutcome(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	room := insertRoom(t, store)
	require.NoError(t, store.UpdateFollower(ctx, room.ID, uuid.New(), room.Version))

	require.NoError(t, store.UpdateOutcome(ctx, room.ID, domain.OutcomeFollowerWon))

	err := store.UpdateOutcome(ctx, room.ID, domain.OutcomeHostWon)
	assert.ErrorIs(t, err, ports.ErrConcurrencyConflict)

	got, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeFollowerWon, got.Outcome, "outcome is written once")

	err = store.UpdateOutcome(ctx, room.ID+1000, domain.OutcomeHostWon)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}
