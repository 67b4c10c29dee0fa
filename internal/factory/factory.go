package factory

import (
	"errors"
	"log/slog"

	"github.com/mcoot/pig-go/internal/api/sse"
	"github.com/mcoot/pig-go/internal/config"
	"github.com/mcoot/pig-go/internal/dependencies/clock"
	"github.com/mcoot/pig-go/internal/dependencies/random"
	"github.com/mcoot/pig-go/internal/services/match"
	"github.com/mcoot/pig-go/internal/storage"
	"github.com/mcoot/pig-go/internal/storage/memory"
	redisstorage "github.com/mcoot/pig-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	MatchService *match.Service

	// EventHub broadcasts the events of matches run over the API
	EventHub *sse.Hub

	closers []func() error
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// HistoryLimit caps how many summaries memory storage retains (0 for no cap)
	HistoryLimit int
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// FromEnv builds a factory Config from the server configuration
func FromEnv(cfg config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:       logger,
		StorageType:  cfg.StorageType,
		HistoryLimit: cfg.HistoryLimit,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := cfg.RedisConfig()
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Create storage based on type
	var store storage.Storage
	var closers []func() error
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New(cfg.HistoryLimit)
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore.Close)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, logger)
	app.closers = append(app.closers, closers...)
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	matchService := match.NewService(store, clk, rnd, logger)

	hub := sse.NewHub(logger)
	go hub.Run()

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		Logger:       logger,
		MatchService: matchService,
		EventHub:     hub,
		closers:      []func() error{hub.Close},
	}
}

// Close stops the event hub and releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
