package model

import (
	"fmt"
	"strings"
)

// Decision is a player's choice after a non-bust roll
type Decision string

const (
	DecisionRoll Decision = "roll"
	DecisionHold Decision = "hold"
)

// ParseDecision interprets a human answer. "roll"/"r" and "hold"/"h" are
// accepted in any case; anything else is ErrInvalidDecisionInput.
func ParseDecision(input string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "roll", "r":
		return DecisionRoll, nil
	case "hold", "h":
		return DecisionHold, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDecisionInput, input)
	}
}

// TurnOutcome records how a turn ended
type TurnOutcome string

const (
	TurnOutcomeBust TurnOutcome = "bust"
	TurnOutcomeHeld TurnOutcome = "held"
)

// TurnResult is the result of one completed turn
type TurnResult struct {
	Turn    int         `json:"turn"` // 1-indexed across the whole game
	Player  string      `json:"player"`
	Rolls   []int       `json:"rolls"`
	Points  int         `json:"points"` // 0 on bust
	Outcome TurnOutcome `json:"outcome"`
	Score   int         `json:"score"` // banked score after the turn
}

// Busted returns true if the turn ended on the bust value
func (r TurnResult) Busted() bool {
	return r.Outcome == TurnOutcomeBust
}
