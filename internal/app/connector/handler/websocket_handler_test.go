package handler

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-duel-rooms/internal/app/connector/session"
	mock_ports "github.com/JoeShih716/go-duel-rooms/test/mocks/core/ports"
	mock_wss "github.com/JoeShih716/go-duel-rooms/test/mocks/pkg/wss"
)

var playerID = uuid.MustParse("cbe81f5e-442b-4811-8eeb-a33790e3fbab")

func newClient(ctrl *gomock.Controller, id string, player any) *mock_wss.MockClient {
	c := mock_wss.NewMockClient(ctrl)
	c.EXPECT().ID().Return(id).AnyTimes()
	if player == nil {
		c.EXPECT().GetTag(TagPlayerID).Return(nil, false).AnyTimes()
	} else {
		c.EXPECT().GetTag(TagPlayerID).Return(player, true).AnyTimes()
	}
	return c
}

func TestWebsocketHandler_OnConnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr := session.NewRegistry(mock_ports.NewMockPushService(ctrl), slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	handler.OnConnect(newClient(ctrl, "sess-1", playerID))

	assert.Equal(t, int64(1), mgr.Count())
	connID, ok := mgr.Lookup(playerID)
	assert.True(t, ok)
	assert.Equal(t, "sess-1", connID)
}

func TestWebsocketHandler_OnConnect_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr := session.NewRegistry(mock_ports.NewMockPushService(ctrl), slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	client := newClient(ctrl, "sess-1", nil)
	client.EXPECT().Kick(gomock.Any()).Return(nil)

	handler.OnConnect(client)
	assert.Equal(t, int64(0), mgr.Count())
}

func TestWebsocketHandler_OnConnect_WrongTagType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr := session.NewRegistry(mock_ports.NewMockPushService(ctrl), slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	client := newClient(ctrl, "sess-1", playerID.String())
	client.EXPECT().Kick(gomock.Any()).Return(nil)

	handler.OnConnect(client)
	assert.Equal(t, int64(0), mgr.Count())
}

func TestWebsocketHandler_OnDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr := session.NewRegistry(mock_ports.NewMockPushService(ctrl), slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	client := newClient(ctrl, "sess-1", playerID)
	handler.OnConnect(client)
	assert.Equal(t, int64(1), mgr.Count())

	handler.OnDisconnect(client)
	assert.Equal(t, int64(0), mgr.Count())
}

func TestWebsocketHandler_ReconnectThenStaleDisconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mock_ports.NewMockPushService(ctrl)
	mgr := session.NewRegistry(push, slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	first := newClient(ctrl, "sess-1", playerID)
	second := newClient(ctrl, "sess-2", playerID)
	push.EXPECT().ForceClose("sess-1", gomock.Any()).Return(nil)

	handler.OnConnect(first)
	handler.OnConnect(second)
	handler.OnDisconnect(first)

	connID, ok := mgr.Lookup(playerID)
	assert.True(t, ok)
	assert.Equal(t, "sess-2", connID)
}

func TestWebsocketHandler_OnMessageIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mgr := session.NewRegistry(mock_ports.NewMockPushService(ctrl), slog.Default())
	handler := NewWebsocketHandler(mgr, slog.Default())

	handler.OnMessage(newClient(ctrl, "sess-1", playerID), []byte("hello"))
	assert.Equal(t, int64(0), mgr.Count())
}
