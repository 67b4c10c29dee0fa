package turn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/pig-go/internal/dependencies/clock"
	"github.com/mcoot/pig-go/internal/model"
)

// Roller produces die rolls
type Roller interface {
	Roll() int
}

// DecisionRequest describes the position a human player is deciding on
type DecisionRequest struct {
	GameID    model.GameID
	Player    string
	TurnTotal int
	Score     int
	Attempt   int // 1 on first ask, incremented after each invalid answer
}

// InputSource obtains a raw roll/hold answer for a human player.
// Returning an error aborts the game; invalid text is not an error here.
type InputSource interface {
	RequestDecision(ctx context.Context, req DecisionRequest) (string, error)
}

// InputFunc adapts a function to the InputSource interface
type InputFunc func(ctx context.Context, req DecisionRequest) (string, error)

// RequestDecision calls f(ctx, req)
func (f InputFunc) RequestDecision(ctx context.Context, req DecisionRequest) (string, error) {
	return f(ctx, req)
}

// Engine plays a single player's turn to completion
type Engine struct {
	bustValue int
	input     InputSource
	observer  Observer
	clock     clock.Clock
	logger    *slog.Logger
}

// NewEngine creates a turn Engine. input may be nil when every player is
// automated; observer may be nil.
func NewEngine(bustValue int, input InputSource, observer Observer, clk clock.Clock, logger *slog.Logger) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{
		bustValue: bustValue,
		input:     input,
		observer:  observer,
		clock:     clk,
		logger:    logger.With(slog.String("component", "turn-engine")),
	}
}

// HasInput returns true if the engine can ask a human for decisions
func (e *Engine) HasInput() bool {
	return e.input != nil
}

// PlayTurn rolls until the player busts or holds. Exactly one AddToScore
// call is made per completed turn; a bust commits zero. There is no cap on
// the number of rolls.
func (e *Engine) PlayTurn(ctx context.Context, gameID model.GameID, turnNumber int, player *model.Player, die Roller) (model.TurnResult, error) {
	result := model.TurnResult{
		Turn:   turnNumber,
		Player: player.Name,
	}

	e.emit(gameID, player, model.EventTurnStarted, model.TurnStartedPayload{
		Turn:  turnNumber,
		Score: player.Score(),
	})

	turnTotal := 0
	for {
		roll := die.Roll()
		result.Rolls = append(result.Rolls, roll)

		if roll == e.bustValue {
			player.AddToScore(0)
			result.Outcome = model.TurnOutcomeBust
			result.Score = player.Score()

			e.emit(gameID, player, model.EventRolled, model.RolledPayload{Roll: roll, Bust: true, Score: player.Score()})
			e.emit(gameID, player, model.EventBust, model.BustPayload{Roll: roll, Forfeited: turnTotal})
			break
		}

		turnTotal += roll
		e.emit(gameID, player, model.EventRolled, model.RolledPayload{
			Roll:      roll,
			TurnTotal: turnTotal,
			Score:     player.Score(),
		})

		decision, err := e.decide(ctx, gameID, player, turnTotal)
		if err != nil {
			return result, err
		}

		if decision == model.DecisionHold {
			player.AddToScore(turnTotal)
			result.Points = turnTotal
			result.Outcome = model.TurnOutcomeHeld
			result.Score = player.Score()

			e.emit(gameID, player, model.EventHeld, model.HeldPayload{
				Points: turnTotal,
				Score:  player.Score(),
			})
			break
		}
	}

	e.logger.Debug("turn complete",
		slog.String("game_id", string(gameID)),
		slog.String("player", player.Name),
		slog.Int("turn", turnNumber),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("points", result.Points),
		slog.Int("rolls", len(result.Rolls)),
	)

	e.emit(gameID, player, model.EventTurnComplete, model.TurnCompletePayload{Result: result})
	return result, nil
}

// decide asks the player's strategy, or the input source for humans,
// re-prompting until a valid answer is given
func (e *Engine) decide(ctx context.Context, gameID model.GameID, player *model.Player, turnTotal int) (model.Decision, error) {
	if player.Strategy != nil {
		return player.Strategy.Decide(player.Score(), turnTotal), nil
	}

	if e.input == nil {
		return "", fmt.Errorf("%w: no input source for human player %s", model.ErrInvalidConfig, player.Name)
	}

	for attempt := 1; ; attempt++ {
		raw, err := e.input.RequestDecision(ctx, DecisionRequest{
			GameID:    gameID,
			Player:    player.Name,
			TurnTotal: turnTotal,
			Score:     player.Score(),
			Attempt:   attempt,
		})
		if err != nil {
			return "", fmt.Errorf("request decision for %s: %w", player.Name, err)
		}

		decision, err := model.ParseDecision(raw)
		if errors.Is(err, model.ErrInvalidDecisionInput) {
			e.emit(gameID, player, model.EventInvalidInput, model.InvalidInputPayload{Input: raw})
			continue
		}
		if err != nil {
			return "", err
		}
		return decision, nil
	}
}

func (e *Engine) emit(gameID model.GameID, player *model.Player, eventType model.EventType, payload any) {
	e.observer.Observe(model.Event{
		Type:      eventType,
		Timestamp: e.clock.Now(),
		GameID:    gameID,
		Player:    player.Name,
		Payload:   payload,
	})
}
