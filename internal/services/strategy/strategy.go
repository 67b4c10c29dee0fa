package strategy

import (
	"fmt"
	"strings"

	"github.com/mcoot/pig-go/internal/dependencies/random"
	"github.com/mcoot/pig-go/internal/model"
)

// DefaultHoldCap is the most a threshold player will try to bank in one turn
const DefaultHoldCap = 25

// New builds the named strategy for a game played to target.
// An empty name selects the threshold strategy.
func New(name string, target int, rnd random.Random) (model.Strategy, error) {
	switch name {
	case "", model.StrategyThreshold:
		return NewThresholdStrategy(target), nil
	case model.StrategyRandom:
		if rnd == nil {
			rnd = random.New()
		}
		return NewRandomStrategy(target, rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", model.ErrUnknownStrategy, name, strings.Join(model.ValidStrategies(), ", "))
	}
}

// ThresholdStrategy holds once the turn total reaches
// min(cap, target - banked), never below zero
type ThresholdStrategy struct {
	holdCap int
	target  int
}

// NewThresholdStrategy creates a ThresholdStrategy with the default cap of 25
func NewThresholdStrategy(target int) *ThresholdStrategy {
	return NewThresholdStrategyWithCap(DefaultHoldCap, target)
}

// NewThresholdStrategyWithCap creates a ThresholdStrategy with a custom cap
func NewThresholdStrategyWithCap(holdCap, target int) *ThresholdStrategy {
	return &ThresholdStrategy{holdCap: holdCap, target: target}
}

// Name returns the strategy name
func (s *ThresholdStrategy) Name() string {
	return model.StrategyThreshold
}

// Threshold returns the turn total at which the player holds
func (s *ThresholdStrategy) Threshold(banked int) int {
	if banked >= s.target {
		return 0
	}
	return max(0, min(s.holdCap, s.target-banked))
}

// Decide holds when the turn total has reached the threshold
func (s *ThresholdStrategy) Decide(banked, turnTotal int) model.Decision {
	if turnTotal >= s.Threshold(banked) {
		return model.DecisionHold
	}
	return model.DecisionRoll
}

// RandomStrategy flips a coin after every roll, but always holds when
// banking would reach the target
type RandomStrategy struct {
	target int
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(target int, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{target: target, random: rnd}
}

// Name returns the strategy name
func (s *RandomStrategy) Name() string {
	return model.StrategyRandom
}

// Decide returns hold or roll with equal probability
func (s *RandomStrategy) Decide(banked, turnTotal int) model.Decision {
	if banked+turnTotal >= s.target {
		return model.DecisionHold
	}
	if s.random.Intn(2) == 0 {
		return model.DecisionRoll
	}
	return model.DecisionHold
}
