package model

// Strategy constants
const (
	StrategyThreshold = "threshold"
	StrategyRandom    = "random"
)

// Strategy decides between rolling again and holding for an automated player
type Strategy interface {
	// Name returns the registered strategy name
	Name() string
	// Decide is called after every non-bust roll with the banked score and
	// the points accumulated so far this turn
	Decide(banked, turnTotal int) Decision
}

// ValidStrategies returns all valid strategy names
func ValidStrategies() []string {
	return []string{StrategyThreshold, StrategyRandom}
}
