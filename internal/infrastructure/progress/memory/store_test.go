package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
)

func TestStore_KeepsLatestSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.Latest(ctx, 1)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)

	require.NoError(t, s.Publish(ctx, domain.Progress{RoomID: 1, Turn: 1}))
	require.NoError(t, s.Publish(ctx, domain.Progress{RoomID: 1, Turn: 2, Finished: true}))

	got, err := s.Latest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Turn)
	assert.True(t, got.Finished)
}
