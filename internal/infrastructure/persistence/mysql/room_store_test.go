package mysql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
)

func TestRoomRecord_RoundTrip(t *testing.T) {
	hostID := uuid.New()
	followerID := uuid.New()

	room := &domain.Room{
		ID:         12,
		HostID:     hostID,
		FollowerID: &followerID,
		Outcome:    domain.OutcomeFollowerWon,
		Version:    2,
	}

	rec := newRoomRecord(room)
	assert.Equal(t, hostID.String(), rec.HostID)
	require.NotNil(t, rec.FollowerID)
	assert.Equal(t, followerID.String(), *rec.FollowerID)

	got, err := rec.toDomain()
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomRecord_NoFollower(t *testing.T) {
	rec := newRoomRecord(domain.NewRoom(uuid.New()))
	assert.Nil(t, rec.FollowerID)
	assert.Equal(t, int64(1), rec.Version)

	got, err := rec.toDomain()
	require.NoError(t, err)
	assert.False(t, got.HasFollower())
}

func TestRoomRecord_CorruptHost(t *testing.T) {
	rec := &roomRecord{ID: 1, HostID: "not-a-uuid"}

	_, err := rec.toDomain()
	assert.Error(t, err)
}

func TestRoomRecord_TableName(t *testing.T) {
	assert.Equal(t, "rooms", roomRecord{}.TableName())
}
