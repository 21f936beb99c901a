package matchmaking

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	mock_ports "github.com/JoeShih716/go-duel-rooms/test/mocks/core/ports"
)

var (
	hostID     = uuid.MustParse("a1e3c5d7-0000-4000-8000-000000000001")
	followerID = uuid.MustParse("b2f4d6e8-0000-4000-8000-000000000002")
)

// scripted 依序回傳預先安排的傷害值，用完後固定回傳 0
func scripted(values ...int) DamageSource {
	var mu sync.Mutex
	return func(int) int {
		mu.Lock()
		defer mu.Unlock()
		if len(values) == 0 {
			return 0
		}
		v := values[0]
		values = values[1:]
		return v
	}
}

func fullRoom(id int64) *domain.Room {
	room := domain.NewRoom(hostID)
	room.ID = id
	f := followerID
	room.FollowerID = &f
	return room
}

type runnerMocks struct {
	rooms    *mock_ports.MockRoomRepository
	notifier *mock_ports.MockPlayerNotifier
	progress *mock_ports.MockProgressPublisher
}

func newTestRunner(ctrl *gomock.Controller, src DamageSource) (*Runner, runnerMocks) {
	m := runnerMocks{
		rooms:    mock_ports.NewMockRoomRepository(ctrl),
		notifier: mock_ports.NewMockPlayerNotifier(ctrl),
		progress: mock_ports.NewMockProgressPublisher(ctrl),
	}
	r := NewRunner(m.rooms, m.notifier, m.progress,
		RunnerConfig{TurnDelay: -1},
		slog.Default(),
		WithDamageSource(src),
	)
	return r, m
}

func TestRunner_HostWins_NotifiesWinnerThenLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	r, m := newTestRunner(ctrl, scripted(0, domain.DefaultPlayerHealth))

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(4)).Return(fullRoom(4), nil)
	m.progress.EXPECT().Publish(gomock.Any(), domain.Progress{
		RoomID:         4,
		Turn:           1,
		HostID:         hostID,
		HostHealth:     domain.DefaultPlayerHealth,
		FollowerID:     followerID,
		FollowerHealth: 0,
		Finished:       true,
	}).Return(nil)

	gomock.InOrder(
		m.rooms.EXPECT().SetWinner(gomock.Any(), int64(4), hostID).Return(nil),
		m.notifier.EXPECT().NotifyOutcome(gomock.Any(), hostID, int64(4), true).Return(true),
		m.notifier.EXPECT().NotifyOutcome(gomock.Any(), followerID, int64(4), false).Return(true),
	)

	require.NoError(t, r.HandleSession(ctx, 4))
}

func TestRunner_FollowerWinsAfterTenTurns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var damages []int
	for i := 0; i < domain.DefaultPlayerHealth; i++ {
		damages = append(damages, 1, 0)
	}
	r, m := newTestRunner(ctrl, scripted(damages...))

	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(8)).Return(fullRoom(8), nil)
	m.progress.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(domain.DefaultPlayerHealth)
	gomock.InOrder(
		m.rooms.EXPECT().SetWinner(gomock.Any(), int64(8), followerID).Return(nil),
		m.notifier.EXPECT().NotifyOutcome(gomock.Any(), followerID, int64(8), true).Return(true),
		m.notifier.EXPECT().NotifyOutcome(gomock.Any(), hostID, int64(8), false).Return(true),
	)

	require.NoError(t, r.HandleSession(context.Background(), 8))
}

func TestRunner_NoFollower(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRunner(ctrl, scripted())
	room := domain.NewRoom(hostID)
	room.ID = 2
	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(2)).Return(room, nil)

	err := r.HandleSession(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRunner_RoomNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRunner(ctrl, scripted())
	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(3)).Return(nil, domain.ErrRoomNotFound)

	err := r.HandleSession(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRunner_SetWinnerFailureSkipsNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRunner(ctrl, scripted(domain.DefaultPlayerHealth, 0))
	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(5)).Return(fullRoom(5), nil)
	m.progress.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	m.rooms.EXPECT().SetWinner(gomock.Any(), int64(5), followerID).Return(domain.ErrInvalidState)

	err := r.HandleSession(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRunner_UndeliveredAndPublishFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := newTestRunner(ctrl, scripted(0, domain.DefaultPlayerHealth))
	m.rooms.EXPECT().GetRoom(gomock.Any(), int64(6)).Return(fullRoom(6), nil)
	m.progress.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	m.rooms.EXPECT().SetWinner(gomock.Any(), int64(6), hostID).Return(nil)
	m.notifier.EXPECT().NotifyOutcome(gomock.Any(), hostID, int64(6), true).Return(false)
	m.notifier.EXPECT().NotifyOutcome(gomock.Any(), followerID, int64(6), false).Return(false)

	assert.NoError(t, r.HandleSession(context.Background(), 6))
}

func TestRunner_DefaultDamageWithinBounds(t *testing.T) {
	r := NewRunner(nil, nil, nil, RunnerConfig{}, slog.Default())

	assert.Equal(t, DefaultTurnDelay, r.turnDelay)
	assert.Equal(t, DefaultMaxDamage, r.maxDamage)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		d := r.damage(r.maxDamage)
		require.GreaterOrEqual(t, d, 0)
		require.LessOrEqual(t, d, DefaultMaxDamage)
		seen[d] = true
	}
	assert.Len(t, seen, DefaultMaxDamage+1)
}
