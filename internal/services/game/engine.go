package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/pig-go/internal/dependencies/clock"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/turn"
)

// Engine manages the game state machine and turn alternation for exactly two
// players. It is not safe for concurrent use; one goroutine drives a game.
type Engine struct {
	id      model.GameID
	cfg     model.GameConfig
	players [2]*model.Player
	die     turn.Roller
	turns   *turn.Engine
	clock   clock.Clock
	logger  *slog.Logger

	observer turn.Observer

	state     model.GameState
	started   bool
	active    int
	turnCount int
	startedAt time.Time
	history   []model.TurnResult
	outcome   *model.GameOutcome
}

// Params holds everything needed to construct an Engine
type Params struct {
	ID       model.GameID
	Config   model.GameConfig
	Players  [2]*model.Player
	Die      turn.Roller
	Turns    *turn.Engine
	Clock    clock.Clock
	Observer turn.Observer
	Logger   *slog.Logger
}

// New validates params and creates an Engine in the in-progress state with
// the first player active
func New(p Params) (*Engine, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if p.Die == nil || p.Turns == nil || p.Clock == nil {
		return nil, fmt.Errorf("%w: die, turn engine and clock are required", model.ErrInvalidConfig)
	}
	for i, player := range p.Players {
		if player == nil || player.Name == "" {
			return nil, fmt.Errorf("%w: player %d must have a name", model.ErrInvalidConfig, i+1)
		}
		if !player.IsAutomated() && !p.Turns.HasInput() {
			return nil, fmt.Errorf("%w: human player %s requires an input source", model.ErrInvalidConfig, player.Name)
		}
	}
	// Outcomes and stats are keyed by name
	if p.Players[0].Name == p.Players[1].Name {
		return nil, fmt.Errorf("%w: players must have different names, both are %q", model.ErrInvalidConfig, p.Players[0].Name)
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	observer := p.Observer
	if observer == nil {
		observer = turn.NopObserver{}
	}

	return &Engine{
		id:       p.ID,
		cfg:      p.Config,
		players:  p.Players,
		die:      p.Die,
		turns:    p.Turns,
		clock:    p.Clock,
		observer: observer,
		logger:   logger.With(slog.String("component", "game-engine"), slog.String("game_id", string(p.ID))),
		state:    model.GameStateInProgress,
	}, nil
}

// ID returns the game ID
func (e *Engine) ID() model.GameID {
	return e.id
}

// Config returns the game configuration
func (e *Engine) Config() model.GameConfig {
	return e.cfg
}

// State returns the current state
func (e *Engine) State() model.GameState {
	return e.state
}

// ActivePlayer returns the index (0 or 1) of the player whose turn is next
func (e *Engine) ActivePlayer() int {
	return e.active
}

// Players returns both players in seat order
func (e *Engine) Players() [2]*model.Player {
	return e.players
}

// StartedAt returns the time of the first step, or zero before it
func (e *Engine) StartedAt() time.Time {
	return e.startedAt
}

// Outcome returns the outcome once the game has finished
func (e *Engine) Outcome() (*model.GameOutcome, bool) {
	return e.outcome, e.outcome != nil
}

// Step plays one turn for the active player, passes play to the other
// player and re-evaluates termination
func (e *Engine) Step(ctx context.Context) error {
	if e.state == model.GameStateFinished {
		return model.ErrGameComplete
	}

	if !e.started {
		e.start()
	}

	player := e.players[e.active]
	e.turnCount++

	result, err := e.turns.PlayTurn(ctx, e.id, e.turnCount, player, e.die)
	if err != nil {
		e.turnCount--
		return err
	}
	e.history = append(e.history, result)

	e.active = 1 - e.active

	if reason, done := e.terminationReason(); done {
		e.finish(reason)
	}
	return nil
}

// Play steps until the game finishes and returns the outcome.
// Cancellation is checked between turns only.
func (e *Engine) Play(ctx context.Context) (*model.GameOutcome, error) {
	for e.state == model.GameStateInProgress {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.Step(ctx); err != nil {
			return nil, err
		}
	}
	return e.outcome, nil
}

func (e *Engine) start() {
	e.started = true
	e.startedAt = e.clock.Now()

	e.logger.Info("game started",
		slog.String("player1", e.players[0].Name),
		slog.String("player2", e.players[1].Name),
		slog.Int("target_score", e.cfg.TargetScore),
		slog.Duration("time_limit", e.cfg.TimeLimit),
	)

	e.observer.Observe(model.Event{
		Type:      model.EventGameStarted,
		Timestamp: e.startedAt,
		GameID:    e.id,
		Payload: model.GameStartedPayload{
			Players: e.scores(),
			Config:  e.cfg,
		},
	})
}

// terminationReason checks the time limit first, then the target score
func (e *Engine) terminationReason() (model.TerminationReason, bool) {
	if clock.Expired(e.clock, e.startedAt, e.cfg.TimeLimit) {
		return model.ReasonTimeExpired, true
	}
	for _, p := range e.players {
		if p.Score() >= e.cfg.TargetScore {
			return model.ReasonTargetReached, true
		}
	}
	return "", false
}

func (e *Engine) finish(reason model.TerminationReason) {
	now := e.clock.Now()

	outcome := model.DecideOutcome(reason, e.scores())
	outcome.Turns = e.turnCount
	outcome.Elapsed = now.Sub(e.startedAt)
	outcome.History = e.history

	e.state = model.GameStateFinished
	e.outcome = &outcome

	e.logger.Info("game finished",
		slog.String("reason", string(reason)),
		slog.String("winner", outcome.Winner),
		slog.Bool("tie", outcome.Tie),
		slog.Int("turns", outcome.Turns),
	)

	e.observer.Observe(model.Event{
		Type:      model.EventGameComplete,
		Timestamp: now,
		GameID:    e.id,
		Payload:   model.GameCompletePayload{Outcome: outcome},
	})
}

func (e *Engine) scores() []model.PlayerScore {
	return []model.PlayerScore{e.players[0].Snapshot(), e.players[1].Snapshot()}
}
