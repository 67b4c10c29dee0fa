package model

import (
	"fmt"
	"strings"
)

// PlayerKind distinguishes externally controlled players from automated ones
type PlayerKind string

const (
	PlayerKindHuman    PlayerKind = "human"
	PlayerKindComputer PlayerKind = "computer"
)

// ParsePlayerKind converts user-supplied text into a PlayerKind
// "automated" is accepted as an alias for computer
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return PlayerKindHuman, nil
	case "computer", "automated":
		return PlayerKindComputer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPlayerType, s)
	}
}

// PlayerSpec describes a player to be created for a new game
type PlayerSpec struct {
	Kind     PlayerKind
	Name     string
	Strategy string // computer players only, defaults to StrategyThreshold
}

// Player is a score holder taking part in a single game.
// A player with a Strategy decides on its own; without one the decision is
// requested from an external input source.
type Player struct {
	Name     string
	Strategy Strategy

	score   int
	commits int
}

// NewPlayer creates a player with a zero score
func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy}
}

// Kind reports whether the player is human or automated
func (p *Player) Kind() PlayerKind {
	if p.Strategy != nil {
		return PlayerKindComputer
	}
	return PlayerKindHuman
}

// IsAutomated returns true if the player decides via a strategy
func (p *Player) IsAutomated() bool {
	return p.Strategy != nil
}

// Score returns the banked score
func (p *Player) Score() int {
	return p.score
}

// AddToScore banks points. Negative values are ignored so the score never
// decreases outside of ResetScore.
func (p *Player) AddToScore(points int) {
	if points < 0 {
		return
	}
	p.score += points
	p.commits++
}

// Commits returns how many times points have been banked, zero included.
// The turn engine banks exactly once per completed turn.
func (p *Player) Commits() int {
	return p.commits
}

// ResetScore sets the score and commit count back to zero
func (p *Player) ResetScore() {
	p.score = 0
	p.commits = 0
}

// PlayerScore is a point-in-time snapshot of a player's score
type PlayerScore struct {
	Name  string     `json:"name"`
	Kind  PlayerKind `json:"kind"`
	Score int        `json:"score"`
}

// Snapshot returns the player's current score as a PlayerScore
func (p *Player) Snapshot() PlayerScore {
	return PlayerScore{Name: p.Name, Kind: p.Kind(), Score: p.score}
}

// PlayerStats aggregates results across recorded games for one player name
type PlayerStats struct {
	Name   string `json:"name"`
	Games  int    `json:"games"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}

// PlayerResult is how a single game ended for one player
type PlayerResult string

const (
	ResultWin  PlayerResult = "win"
	ResultLoss PlayerResult = "loss"
	ResultTie  PlayerResult = "tie"
)

// Record adds one game with the given result
func (s *PlayerStats) Record(result PlayerResult) {
	s.Games++
	switch result {
	case ResultWin:
		s.Wins++
	case ResultLoss:
		s.Losses++
	case ResultTie:
		s.Ties++
	}
}
