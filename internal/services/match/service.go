package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/pig-go/internal/dependencies/clock"
	"github.com/mcoot/pig-go/internal/dependencies/random"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/die"
	"github.com/mcoot/pig-go/internal/services/game"
	"github.com/mcoot/pig-go/internal/services/strategy"
	"github.com/mcoot/pig-go/internal/services/turn"
	"github.com/mcoot/pig-go/internal/storage"
)

const (
	// GameIDLength is the length of generated game IDs
	GameIDLength = 8
	// GameIDAlphabet is the characters used in game IDs (avoid confusing chars)
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// maxIDAttempts bounds the search for an unused game ID
	maxIDAttempts = 10
)

// Request describes a game to be created
type Request struct {
	Players     [2]model.PlayerSpec
	TargetScore *int // nil uses model.DefaultTargetScore
	Timed       bool // applies model.DefaultTimeLimit unless TimeLimit is set
	TimeLimit   time.Duration
	Seed        *uint64 // nil for a non-reproducible die
}

// Config converts the request into game rules
func (r Request) Config() model.GameConfig {
	cfg := model.DefaultGameConfig()
	if r.TargetScore != nil {
		cfg.TargetScore = *r.TargetScore
	}
	if r.Timed {
		cfg.TimeLimit = model.DefaultTimeLimit
		if r.TimeLimit != 0 {
			cfg.TimeLimit = r.TimeLimit
		}
	}
	return cfg
}

// Options carries the per-game collaborators of a match
type Options struct {
	// Input answers for human players; nil when both are computers
	Input turn.InputSource
	// Observer receives every game and turn event; may be nil
	Observer turn.Observer
}

// Service builds players from specs, runs games and records the results
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewService creates a new match Service
func NewService(
	store storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: store,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "match-service")),
	}
}

// NewGame validates the request and builds a ready-to-play game engine
func (s *Service) NewGame(ctx context.Context, req Request, opts Options) (*game.Engine, error) {
	cfg := req.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A seeded game draws every random decision from its own source
	rnd := s.random
	if req.Seed != nil {
		rnd = random.NewSeeded(*req.Seed)
	}

	var players [2]*model.Player
	for i, spec := range req.Players {
		player, err := buildPlayer(spec, cfg.TargetScore, rnd)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		players[i] = player
	}

	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	turns := turn.NewEngine(cfg.BustValue, opts.Input, opts.Observer, s.clock, s.logger)
	return game.New(game.Params{
		ID:       id,
		Config:   cfg,
		Players:  players,
		Die:      die.New(rnd),
		Turns:    turns,
		Clock:    s.clock,
		Observer: opts.Observer,
		Logger:   s.logger,
	})
}

// Run plays a game to completion and records its summary.
// A game that does not finish is not recorded.
func (s *Service) Run(ctx context.Context, req Request, opts Options) (*model.GameSummary, error) {
	engine, err := s.NewGame(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	outcome, err := engine.Play(ctx)
	if err != nil {
		return nil, err
	}

	startedAt := engine.StartedAt()
	summary := &model.GameSummary{
		ID:          engine.ID(),
		Config:      engine.Config(),
		Outcome:     *outcome,
		Seed:        req.Seed,
		StartedAt:   startedAt,
		CompletedAt: startedAt.Add(outcome.Elapsed),
	}

	if err := s.storage.SaveSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("save summary %s: %w", summary.ID, err)
	}

	s.logger.Info("match recorded",
		slog.String("game_id", string(summary.ID)),
		slog.String("winner", outcome.Winner),
		slog.Bool("tie", outcome.Tie),
	)
	return summary, nil
}

// GetSummary returns a recorded game
func (s *Service) GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	return s.storage.GetSummary(ctx, id)
}

// ListSummaries returns up to limit recorded games, newest first
func (s *Service) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	return s.storage.ListSummaries(ctx, limit)
}

// GetPlayerStats returns aggregated results for a player name
func (s *Service) GetPlayerStats(ctx context.Context, name string) (*model.PlayerStats, error) {
	return s.storage.GetPlayerStats(ctx, name)
}

func buildPlayer(spec model.PlayerSpec, target int, rnd random.Random) (*model.Player, error) {
	kind, err := model.ParsePlayerKind(string(spec.Kind))
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrInvalidConfig)
	}

	if kind == model.PlayerKindHuman {
		return model.NewPlayer(spec.Name, nil), nil
	}

	strat, err := strategy.New(spec.Strategy, target, rnd)
	if err != nil {
		return nil, err
	}
	return model.NewPlayer(spec.Name, strat), nil
}

func (s *Service) generateID(ctx context.Context) (model.GameID, error) {
	for range maxIDAttempts {
		id := model.GameID(s.random.String(GameIDLength, GameIDAlphabet))
		_, err := s.storage.GetSummary(ctx, id)
		if errors.Is(err, model.ErrGameNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("no unused game ID after %d attempts", maxIDAttempts)
}
