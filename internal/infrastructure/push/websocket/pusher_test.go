package websocket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	"github.com/JoeShih716/go-duel-rooms/pkg/wss"
	mock_ports "github.com/JoeShih716/go-duel-rooms/test/mocks/core/ports"
)

func TestPusher_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mock_ports.NewMockPushService(ctrl)
	p := NewPusher(transport)

	transport.EXPECT().Send("c1", "1: true").Return(nil)
	assert.NoError(t, p.Send("c1", "1: true"))

	transport.EXPECT().Send("c2", "1: true").Return(wss.ErrClientNotFound)
	assert.ErrorIs(t, p.Send("c2", "1: true"), ports.ErrConnectionGone)

	transport.EXPECT().Send("c3", "1: true").Return(wss.ErrConnectionClosed)
	assert.ErrorIs(t, p.Send("c3", "1: true"), ports.ErrConnectionGone)

	full := wss.ErrSendBufferFull
	transport.EXPECT().Send("c4", "1: true").Return(full)
	err := p.Send("c4", "1: true")
	assert.ErrorIs(t, err, full)
	assert.False(t, errors.Is(err, ports.ErrConnectionGone))
}

func TestPusher_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transport := mock_ports.NewMockPushService(ctrl)
	p := NewPusher(transport)

	transport.EXPECT().IsAlive("c1").Return(true)
	transport.EXPECT().ForceClose("c1", "replaced").Return(nil)

	assert.True(t, p.IsAlive("c1"))
	assert.NoError(t, p.ForceClose("c1", "replaced"))
}
