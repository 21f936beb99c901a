package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-duel-rooms/internal/core/domain"
	"github.com/JoeShih716/go-duel-rooms/internal/core/ports"
	pkgRedis "github.com/JoeShih716/go-duel-rooms/pkg/redis"
)

type published struct {
	channel string
	message []byte
}

// fakeClient 以 map 模擬 pkg/redis.Client 的 JSON 存取
type fakeClient struct {
	values    map[string][]byte
	ttls      map[string]time.Duration
	published []published
	setErr    error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		values: make(map[string][]byte),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeClient) SetStruct(_ context.Context, key string, value any, expiration ...time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = data
	if len(expiration) > 0 {
		f.ttls[key] = expiration[0]
	}
	return nil
}

func (f *fakeClient) GetStruct(_ context.Context, key string, dest any) error {
	data, ok := f.values[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, pkgRedis.ErrKeyNotFound)
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeClient) Publish(_ context.Context, channel string, message any) error {
	f.published = append(f.published, published{channel: channel, message: message.([]byte)})
	return nil
}

func TestKey(t *testing.T) {
	assert.Equal(t, "room:42:progress", Key(42))
}

func TestPublisher_PublishAndLatest(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient()
	p := NewPublisher(client)

	progress := domain.Progress{
		RoomID:         42,
		Turn:           3,
		HostID:         uuid.New(),
		HostHealth:     7,
		FollowerID:     uuid.New(),
		FollowerHealth: 5,
	}
	require.NoError(t, p.Publish(ctx, progress))

	assert.Equal(t, SnapshotTTL, client.ttls["room:42:progress"])
	require.Len(t, client.published, 1)
	assert.Equal(t, "room:42:progress", client.published[0].channel)

	var onWire domain.Progress
	require.NoError(t, json.Unmarshal(client.published[0].message, &onWire))
	assert.Equal(t, progress, onWire)

	latest, err := p.Latest(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, progress, *latest)
}

func TestPublisher_LatestMissing(t *testing.T) {
	p := NewPublisher(newFakeClient())

	_, err := p.Latest(context.Background(), 1)
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestPublisher_StoreFailureSkipsPublish(t *testing.T) {
	client := newFakeClient()
	client.setErr = errors.New("READONLY")
	p := NewPublisher(client)

	err := p.Publish(context.Background(), domain.Progress{RoomID: 1})
	assert.Error(t, err)
	assert.Empty(t, client.published)
}
