package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// IsJSON returns true if output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MatchSummary:
		o.printMatchSummary(v)
	case MatchList:
		o.printMatchList(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Server string `json:"server,omitempty"`
}

// MatchConfig response type
type MatchConfig struct {
	TargetScore      int `json:"target_score"`
	TimeLimitSeconds int `json:"time_limit_seconds,omitempty"`
	BustValue        int `json:"bust_value"`
}

// PlayerScore response type
type PlayerScore struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Score int    `json:"score"`
}

// Turn response type
type Turn struct {
	Number  int    `json:"number"`
	Player  string `json:"player"`
	Rolls   []int  `json:"rolls"`
	Points  int    `json:"points"`
	Outcome string `json:"outcome"`
	Score   int    `json:"score"`
}

// MatchSummary response type
type MatchSummary struct {
	ID          string        `json:"id"`
	Config      MatchConfig   `json:"config"`
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

// MatchList response type
type MatchList struct {
	Matches []MatchSummary `json:"matches"`
}

// PlayerStats response type
type PlayerStats struct {
	Name   string `json:"name"`
	Games  int    `json:"games"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}

func (m MatchSummary) result() string {
	if m.Tie {
		return "tie"
	}
	if m.Winner != nil {
		return *m.Winner + " wins"
	}
	return "unknown"
}

func (m MatchSummary) scoreLine() string {
	parts := make([]string, len(m.Scores))
	for i, s := range m.Scores {
		parts[i] = fmt.Sprintf("%s %d", s.Name, s.Score)
	}
	return strings.Join(parts, " - ")
}

func (o *Output) printMatchSummary(m MatchSummary) {
	_, _ = fmt.Fprintf(o.out, "Match: %s\n", m.ID)
	_, _ = fmt.Fprintf(o.out, "Target: %d\n", m.Config.TargetScore)
	if m.Config.TimeLimitSeconds > 0 {
		_, _ = fmt.Fprintf(o.out, "Time Limit: %ds\n", m.Config.TimeLimitSeconds)
	}
	if m.Seed != nil {
		_, _ = fmt.Fprintf(o.out, "Seed: %d\n", *m.Seed)
	}
	_, _ = fmt.Fprintf(o.out, "Reason: %s\n", m.Reason)
	_, _ = fmt.Fprintf(o.out, "Turns: %d\n", m.Turns)
	_, _ = fmt.Fprintf(o.out, "Elapsed: %s\n", time.Duration(m.ElapsedMS)*time.Millisecond)

	_, _ = fmt.Fprintln(o.out, "\nScores:")
	for _, s := range m.Scores {
		_, _ = fmt.Fprintf(o.out, "  %s (%s): %d points\n", s.Name, s.Kind, s.Score)
	}

	if len(m.History) > 0 {
		_, _ = fmt.Fprintln(o.out, "\nHistory:")
		for _, t := range m.History {
			_, _ = fmt.Fprintf(o.out, "  %3d. %s rolled %v: %s %d, score %d\n",
				t.Number, t.Player, t.Rolls, t.Outcome, t.Points, t.Score)
		}
	}

	_, _ = fmt.Fprintf(o.out, "\nResult: %s\n", m.result())
}

func (o *Output) printMatchList(l MatchList) {
	if len(l.Matches) == 0 {
		_, _ = fmt.Fprintln(o.out, "No matches recorded")
		return
	}
	for _, m := range l.Matches {
		_, _ = fmt.Fprintf(o.out, "%s  %s  %s  (%s)\n",
			m.ID, m.CompletedAt.Format(time.RFC3339), m.scoreLine(), m.result())
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	_, _ = fmt.Fprintf(o.out, "Player: %s\n", s.Name)
	_, _ = fmt.Fprintf(o.out, "Games: %d\n", s.Games)
	_, _ = fmt.Fprintf(o.out, "Wins: %d\n", s.Wins)
	_, _ = fmt.Fprintf(o.out, "Losses: %d\n", s.Losses)
	_, _ = fmt.Fprintf(o.out, "Ties: %d\n", s.Ties)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Server: %s\n", h.Server)
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
}
