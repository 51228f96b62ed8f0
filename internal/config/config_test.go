package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "memory", cfg.DefaultSource)
	assert.True(t, cfg.SyncOnStart)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SYNC_ON_START", "false")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("RESTAURANTS_SOURCE", "s3://hours/rest_hours.csv")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.SyncOnStart)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3://hours/rest_hours.csv", cfg.RestaurantsSource)
}

func TestLoadWithoutDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.DBUrl)
}

func TestLoadDatabaseFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/hours?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/hours?sslmode=disable", cfg.DBUrl)
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Nowhere/Town")

	_, err := Load()
	assert.Error(t, err)
}
