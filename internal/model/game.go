package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateFinished   GameState = "finished"
)

// TerminationReason explains why a game finished
type TerminationReason string

const (
	ReasonTargetReached TerminationReason = "target_reached"
	ReasonTimeExpired   TerminationReason = "time_expired"
)

// GameOutcome is the result of a finished game.
// Equal final scores are reported as a tie with no winner. Player names are
// unique within a game, so Winner identifies a seat.
type GameOutcome struct {
	Reason  TerminationReason `json:"reason"`
	Scores  []PlayerScore     `json:"scores"` // seat order
	Winner  string            `json:"winner,omitempty"`
	Tie     bool              `json:"tie"`
	Turns   int               `json:"turns"`
	Elapsed time.Duration     `json:"elapsed"`
	History []TurnResult      `json:"history,omitempty"`
}

// WinnerScore returns the winner's final score, or false on a tie
func (o GameOutcome) WinnerScore() (PlayerScore, bool) {
	if o.Tie {
		return PlayerScore{}, false
	}
	for _, s := range o.Scores {
		if s.Name == o.Winner {
			return s, true
		}
	}
	return PlayerScore{}, false
}

// DecideOutcome picks the winner from final scores. Only a strictly higher
// score wins; equal scores produce a tie.
func DecideOutcome(reason TerminationReason, scores []PlayerScore) GameOutcome {
	outcome := GameOutcome{
		Reason: reason,
		Scores: scores,
	}
	if len(scores) != 2 {
		return outcome
	}

	switch {
	case scores[0].Score > scores[1].Score:
		outcome.Winner = scores[0].Name
	case scores[1].Score > scores[0].Score:
		outcome.Winner = scores[1].Name
	default:
		outcome.Tie = true
	}
	return outcome
}

// GameSummary is the stored record of a finished game
type GameSummary struct {
	ID          GameID      `json:"id"`
	Config      GameConfig  `json:"config"`
	Outcome     GameOutcome `json:"outcome"`
	Seed        *uint64     `json:"seed,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// ResultFor reports how the game ended for the named player
func (o GameOutcome) ResultFor(name string) PlayerResult {
	switch {
	case o.Tie:
		return ResultTie
	case o.Winner == name:
		return ResultWin
	default:
		return ResultLoss
	}
}

// PlayerNames returns the names of both players in seat order
func (s GameSummary) PlayerNames() []string {
	names := make([]string, 0, len(s.Outcome.Scores))
	for _, ps := range s.Outcome.Scores {
		names = append(names, ps.Name)
	}
	return names
}
