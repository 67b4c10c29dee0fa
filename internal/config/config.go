package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	redisstorage "github.com/mcoot/pig-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the server configuration, read from PIG_* environment variables
type Config struct {
	Host string `env:"PIG_HOST"`
	Port int    `env:"PIG_PORT" envDefault:"8080"`

	StorageType  string        `env:"PIG_STORAGE_TYPE" envDefault:"memory"`
	RedisURL     string        `env:"PIG_REDIS_URL" envDefault:"redis://localhost:6379"`
	ResultTTL    time.Duration `env:"PIG_RESULT_TTL" envDefault:"720h"`
	HistoryLimit int           `env:"PIG_HISTORY_LIMIT" envDefault:"100"`

	LogLevel string `env:"PIG_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PIG_PORT out of range: %d", c.Port))
	}
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("PIG_REDIS_URL required when PIG_STORAGE_TYPE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("PIG_STORAGE_TYPE must be %q or %q, got %q", StorageTypeMemory, StorageTypeRedis, c.StorageType))
	}
	if c.ResultTTL < 0 {
		errs = append(errs, fmt.Errorf("PIG_RESULT_TTL must not be negative, got %s", c.ResultTTL))
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("PIG_HISTORY_LIMIT must not be negative, got %d", c.HistoryLimit))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Addr returns the listen address
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("PIG_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// RedisConfig returns Redis storage settings derived from this config
func (c Config) RedisConfig() redisstorage.Config {
	cfg := redisstorage.DefaultConfig()
	cfg.URL = c.RedisURL
	cfg.ResultTTL = c.ResultTTL
	cfg.HistoryLimit = c.HistoryLimit
	return cfg
}
