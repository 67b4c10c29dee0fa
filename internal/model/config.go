package model

import (
	"fmt"
	"time"
)

// Game rule constants
const (
	DieFaces           = 6
	DefaultTargetScore = 100
	DefaultBustValue   = 1
	DefaultTimeLimit   = 60 * time.Second
)

// GameConfig holds the immutable rules of a single game
type GameConfig struct {
	TargetScore int           `json:"target_score"`
	TimeLimit   time.Duration `json:"time_limit"` // 0 means untimed
	BustValue   int           `json:"bust_value"`
}

// DefaultGameConfig returns an untimed game to 100 with 1 as the bust value
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TargetScore: DefaultTargetScore,
		BustValue:   DefaultBustValue,
	}
}

// Timed returns true if a time limit applies
func (c GameConfig) Timed() bool {
	return c.TimeLimit > 0
}

// Validate checks the config, returning ErrInvalidConfig with detail
func (c GameConfig) Validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("%w: target score must be positive, got %d", ErrInvalidConfig, c.TargetScore)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: time limit must not be negative, got %s", ErrInvalidConfig, c.TimeLimit)
	}
	if c.BustValue < 1 || c.BustValue > DieFaces {
		return fmt.Errorf("%w: bust value must be a die face, got %d", ErrInvalidConfig, c.BustValue)
	}
	return nil
}
