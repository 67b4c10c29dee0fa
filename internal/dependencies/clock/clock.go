package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on clk since start
func Since(clk Clock, start time.Time) time.Duration {
	return clk.Now().Sub(start)
}

// Expired reports whether limit has run out since start. Reaching the limit
// exactly counts as expired; a non-positive limit never expires.
func Expired(clk Clock, start time.Time, limit time.Duration) bool {
	if limit <= 0 {
		return false
	}
	return Since(clk, start) >= limit
}
