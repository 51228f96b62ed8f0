package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

type memClient struct {
	data    map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newMemClient() *memClient {
	return &memClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.readErr != nil {
		return redis.NewStringResult("", m.readErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memClient) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type countingFinder struct {
	calls int
	out   []openhours.Restaurant
	err   error
}

func (c *countingFinder) ListOpen(context.Context, openhours.Day, openhours.Clock) ([]openhours.Restaurant, error) {
	c.calls++
	return c.out, c.err
}

func TestFinderReadThrough(t *testing.T) {
	next := &countingFinder{out: []openhours.Restaurant{{ID: 3, Name: "Burger Bar"}}}
	client := newMemClient()
	f := NewFinder(next, client, "sql", time.Minute, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := f.ListOpen(ctx, openhours.Sunday, openhours.ClockAt(3, 0))
		require.NoError(t, err)
		assert.Equal(t, []openhours.Restaurant{{ID: 3, Name: "Burger Bar"}}, got)
	}
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, time.Minute, client.ttls["open:sql:0:SUNDAY:180"])

	_, err := f.ListOpen(ctx, openhours.Sunday, openhours.ClockAt(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestFinderReset(t *testing.T) {
	next := &countingFinder{out: []openhours.Restaurant{}}
	f := NewFinder(next, newMemClient(), "builder", time.Minute, zap.NewNop())
	ctx := context.Background()

	_, _ = f.ListOpen(ctx, openhours.Monday, openhours.ClockAt(12, 0))
	f.Reset()
	_, _ = f.ListOpen(ctx, openhours.Monday, openhours.ClockAt(12, 0))
	assert.Equal(t, 2, next.calls)
}

func TestFinderFallsThroughOnCacheError(t *testing.T) {
	next := &countingFinder{out: []openhours.Restaurant{{ID: 1, Name: "A"}}}
	client := newMemClient()
	client.readErr = errors.New("connection refused")
	f := NewFinder(next, client, "sql", time.Minute, zap.NewNop())

	got, err := f.ListOpen(context.Background(), openhours.Monday, openhours.ClockAt(12, 0))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFinderBackendError(t *testing.T) {
	next := &countingFinder{err: errors.New("db down")}
	client := newMemClient()
	f := NewFinder(next, client, "sql", time.Minute, zap.NewNop())

	_, err := f.ListOpen(context.Background(), openhours.Monday, openhours.ClockAt(12, 0))
	assert.EqualError(t, err, "db down")
	assert.Empty(t, client.data)
}
