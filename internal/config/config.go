package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/BruksfildServices01/restaurant-hours/internal/timezone"
)

type Config struct {
	Env        string `mapstructure:"ENV"`
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// DBUrl empty runs without a database, memory source only.
	DBUrl string `mapstructure:"DATABASE_URL"`

	// RestaurantsSource is a local CSV path or an s3://bucket/key URI.
	RestaurantsSource string `mapstructure:"RESTAURANTS_SOURCE"`
	SyncOnStart       bool   `mapstructure:"SYNC_ON_START"`
	DefaultSource     string `mapstructure:"DEFAULT_SOURCE"`
	Timezone          string `mapstructure:"TIMEZONE"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	S3Region    string `mapstructure:"S3_REGION"`
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
}

var defaults = map[string]any{
	"ENV":                "development",
	"SERVER_PORT":        "8080",
	"LOG_LEVEL":          "info",
	"DATABASE_URL":       "",
	"RESTAURANTS_SOURCE": "data/rest_hours.csv",
	"SYNC_ON_START":      true,
	"DEFAULT_SOURCE":     "memory",
	"TIMEZONE":           timezone.DefaultTimezone,
	"REDIS_ADDR":         "",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"CACHE_TTL":          "60s",
	"S3_REGION":          "us-east-1",
	"S3_ENDPOINT":        "",
	"S3_ACCESS_KEY":      "",
	"S3_SECRET_KEY":      "",
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, def := range defaults {
		v.SetDefault(key, def)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !timezone.IsValid(cfg.Timezone) {
		return nil, fmt.Errorf("invalid TIMEZONE %q", cfg.Timezone)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
