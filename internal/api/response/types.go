package response

import (
	"time"

	"github.com/mcoot/pig-go/internal/model"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Config represents the rules a match was played under
type Config struct {
	TargetScore      int `json:"target_score"`
	TimeLimitSeconds int `json:"time_limit_seconds,omitempty"`
	BustValue        int `json:"bust_value"`
}

// ConfigFromModel converts model.GameConfig
func ConfigFromModel(c model.GameConfig) Config {
	return Config{
		TargetScore:      c.TargetScore,
		TimeLimitSeconds: int(c.TimeLimit / time.Second),
		BustValue:        c.BustValue,
	}
}

// PlayerScore represents a player's final score
type PlayerScore struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Score int    `json:"score"`
}

// Turn represents one completed turn
type Turn struct {
	Number  int    `json:"number"`
	Player  string `json:"player"`
	Rolls   []int  `json:"rolls"`
	Points  int    `json:"points"`
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`
}

// MatchSummary represents a finished match
type MatchSummary struct {
	ID          string        `json:"id"`
	Config      Config        `json:"config"`
	Reason      string        `json:"reason"`
	Scores      []PlayerScore `json:"scores"`
	Winner      *string       `json:"winner"`
	Tie         bool          `json:"tie"`
	Turns       int           `json:"turns"`
	ElapsedMS   int64         `json:"elapsed_ms"`
	Seed        *uint64       `json:"seed,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	History     []Turn        `json:"history,omitempty"`
}

// MatchSummaryFromModel converts model.GameSummary.
// The turn history is only included when withHistory is set.
func MatchSummaryFromModel(s *model.GameSummary, withHistory bool) MatchSummary {
	var history []Turn
	if withHistory {
		history = make([]Turn, len(s.Outcome.History))
		for i, t := range s.Outcome.History {
			history[i] = turnFromModel(t)
		}
	}

	return MatchSummary{
		ID:          string(s.ID),
		Config:      ConfigFromModel(s.Config),
		Reason:      string(s.Outcome.Reason),
		Scores:      scoresFromModel(s.Outcome.Scores),
		Winner:      winnerFromModel(s.Outcome),
		Tie:         s.Outcome.Tie,
		Turns:       s.Outcome.Turns,
		ElapsedMS:   s.Outcome.Elapsed.Milliseconds(),
		Seed:        s.Seed,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		History:     history,
	}
}

func scoresFromModel(in []model.PlayerScore) []PlayerScore {
	scores := make([]PlayerScore, len(in))
	for i, ps := range in {
		scores[i] = PlayerScore{Name: ps.Name, Kind: string(ps.Kind), Score: ps.Score}
	}
	return scores
}

func winnerFromModel(o model.GameOutcome) *string {
	if o.Winner == "" {
		return nil
	}
	w := o.Winner
	return &w
}

func turnFromModel(t model.TurnResult) Turn {
	return Turn{
		Number:  t.Turn,
		Player:  t.Player,
		Rolls:   t.Rolls,
		Points:  t.Points,
		Outcome: string(t.Outcome),
		Score:   t.Score,
	}
}

// MatchList is the response for listing matches
type MatchList struct {
	Matches []MatchSummary `json:"matches"`
}

// MatchListFromModel converts a list of summaries without their histories
func MatchListFromModel(summaries []*model.GameSummary) MatchList {
	matches := make([]MatchSummary, len(summaries))
	for i, s := range summaries {
		matches[i] = MatchSummaryFromModel(s, false)
	}
	return MatchList{Matches: matches}
}

// PlayerStats represents a player's aggregated results
type PlayerStats struct {
	Name   string `json:"name"`
	Games  int    `json:"games"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}

// PlayerStatsFromModel converts model.PlayerStats
func PlayerStatsFromModel(s *model.PlayerStats) PlayerStats {
	return PlayerStats{
		Name:   s.Name,
		Games:  s.Games,
		Wins:   s.Wins,
		Losses: s.Losses,
		Ties:   s.Ties,
	}
}
