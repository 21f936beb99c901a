package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-duel-rooms/internal/app/api"
	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	progressmem "github.com/JoeShih716/go-duel-rooms/internal/infrastructure/progress/memory"
	mock_ports "github.com/JoeShih716/go-duel-rooms/test/mocks/core/ports"
)

var (
	hostID     = uuid.MustParse("f112384c-cbac-4f9e-b478-fc9e5cd10db3")
	followerID = uuid.MustParse("cbe81f5e-442b-4811-8eeb-a33790e3fbab")
)

type fixture struct {
	rooms    *mock_ports.MockRoomRepository
	sessions *mock_ports.MockSessionRequester
	progress *progressmem.Store
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		rooms:    mock_ports.NewMockRoomRepository(ctrl),
		sessions: mock_ports.NewMockSessionRequester(ctrl),
		progress: progressmem.NewStore(),
	}
	h := api.NewRoomHandler(f.rooms, f.sessions, f.progress, slog.Default())
	f.router = api.NewRouter(h, "/ws", nil, slog.Default())
	return f
}

func (f *fixture) do(method, path string, player uuid.UUID) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if player != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+player.String())
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestCreateRoom(t *testing.T) {
	f := newFixture(t)
	f.rooms.EXPECT().CreateRoom(gomock.Any(), hostID).Return(int64(5), nil)

	rec := f.do(http.MethodPost, "/rooms", hostID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"room_id":5}`, rec.Body.String())
}

func TestCreateRoom_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/rooms", uuid.Nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateRoom_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.rooms.EXPECT().CreateRoom(gomock.Any(), hostID).Return(int64(0), errors.New("db down"))

	rec := f.do(http.MethodPost, "/rooms", hostID)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestJoinRoom_RequestsSession(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.rooms.EXPECT().JoinRoom(gomock.Any(), int64(5), followerID).Return(nil),
		f.sessions.EXPECT().RequestSession(int64(5)),
	)

	rec := f.do(http.MethodPost, "/rooms/5/join", followerID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJoinRoom_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.ErrRoomNotFound, http.StatusNotFound, "Room not found."},
		{"full", fmt.Errorf("join room 5: %w", domain.ErrRoomIsFull), http.StatusConflict, "Room is full."},
		{"own room", domain.ErrJoinOwnRoom, http.StatusConflict, "Joining own room is prohibited."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.rooms.EXPECT().JoinRoom(gomock.Any(), int64(5), followerID).Return(tt.err)
			// RequestSession 不應被呼叫

			rec := f.do(http.MethodPost, "/rooms/5/join", followerID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}

func TestJoinRoom_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/rooms/abc/join", followerID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRoom(t *testing.T) {
	f := newFixture(t)
	follower := followerID
	f.rooms.EXPECT().GetRoom(gomock.Any(), int64(5)).Return(&domain.Room{
		ID:         5,
		HostID:     hostID,
		FollowerID: &follower,
		Outcome:    domain.OutcomeFollowerWon,
		Version:    2,
	}, nil)

	rec := f.do(http.MethodGet, "/rooms/5", hostID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"id":5,"host_id":%q,"follower_id":%q,"outcome":"follower_won"}`,
		hostID, followerID), rec.Body.String())
}

func TestGetProgress(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/rooms/5/progress", hostID)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, f.progress.Publish(context.Background(), domain.Progress{
		RoomID: 5, Turn: 2, HostID: hostID, HostHealth: 8, FollowerID: followerID, FollowerHealth: 9,
	}))

	rec = f.do(http.MethodGet, "/rooms/5/progress", hostID)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Turn)
	assert.Equal(t, 9, got.FollowerHealth)
}
