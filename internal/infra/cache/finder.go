package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

// Client is the part of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Finder memoizes a relational backend per (day, minute). Cache failures
// are logged and fall through to the backend; they never fail a query.
type Finder struct {
	next   openhours.Finder
	client Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger

	generation atomic.Uint64
}

func NewFinder(next openhours.Finder, client Client, prefix string, ttl time.Duration, log *zap.Logger) *Finder {
	return &Finder{next: next, client: client, prefix: prefix, ttl: ttl, log: log}
}

type entry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (f *Finder) key(day openhours.Day, at openhours.Clock) string {
	return fmt.Sprintf("open:%s:%d:%s:%d", f.prefix, f.generation.Load(), day, int(at))
}

// Reset stops serving entries written before the call. Old keys are left
// to expire.
func (f *Finder) Reset() {
	f.generation.Add(1)
}

func (f *Finder) ListOpen(
	ctx context.Context,
	day openhours.Day,
	at openhours.Clock,
) ([]openhours.Restaurant, error) {

	key := f.key(day, at)

	raw, err := f.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []entry
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			return fromEntries(cached), nil
		}
		f.log.Warn("discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		f.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	out, err := f.next.ListOpen(ctx, day, at)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(toEntries(out))
	if err == nil {
		err = f.client.Set(ctx, key, b, f.ttl).Err()
	}
	if err != nil {
		f.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func toEntries(rs []openhours.Restaurant) []entry {
	out := make([]entry, 0, len(rs))
	for _, r := range rs {
		out = append(out, entry{ID: r.ID, Name: r.Name})
	}
	return out
}

func fromEntries(es []entry) []openhours.Restaurant {
	out := make([]openhours.Restaurant, 0, len(es))
	for _, e := range es {
		out = append(out, openhours.Restaurant{ID: e.ID, Name: e.Name})
	}
	return out
}

// Compile-time check
var _ openhours.Finder = (*Finder)(nil)
