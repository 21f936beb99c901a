package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

func TestRoomStore_InsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := NewRoomStore()

	a := domain.NewRoom(uuid.New())
	b := domain.NewRoom(uuid.New())
	require.NoError(t, store.Insert(ctx, a))
	require.NoError(t, store.Insert(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestRoomStore_FindByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewRoomStore()
	room := domain.NewRoom(uuid.New())
	require.NoError(t, store.Insert(ctx, room))

	got, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	got.Outcome = domain.OutcomeHostWon

	again, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNone, again.Outcome)
}

func TestRoomStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewRoomStore()

	_, err := store.FindByID(ctx, 5)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdateFollower(ctx, 5, uuid.New(), 1), ports.ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdateOutcome(ctx, 5, domain.OutcomeHostWon), ports.ErrRecordNotFound)
}

func TestRoomStore_UpdateFollower_Version(t *testing.T) {
	ctx := context.Background()
	store := NewRoomStore()
	room := domain.NewRoom(uuid.New())
	require.NoError(t, store.Insert(ctx, room))

	require.NoError(t, store.UpdateFollower(ctx, room.ID, uuid.New(), 1))

	err := store.UpdateFollower(ctx, room.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, ports.ErrConcurrencyConflict)

	got, err := store.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestRoomStore_UpdateOutcome_Once(t *testing.T) {
	ctx := context.Background()
	store := NewRoomStore()
	room := domain.NewRoom(uuid.New())
	require.NoError(t, store.Insert(ctx, room))

	require.NoError(t, store.UpdateOutcome(ctx, room.ID, domain.OutcomeFollowerWon))
	assert.ErrorIs(t, store.UpdateOutcome(ctx, room.ID, domain.OutcomeHostWon), ports.ErrConcurrencyConflict)
}

func TestRoomStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRoomStore().Insert(ctx, domain.NewRoom(uuid.New()))
	assert.ErrorIs(t, err, context.Canceled)
}
