package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Game events
	EventGameStarted  EventType = "game_started"
	EventGameComplete EventType = "game_complete"

	// Turn events
	EventTurnStarted  EventType = "turn_started"
	EventRolled       EventType = "rolled"
	EventBust         EventType = "bust"
	EventHeld         EventType = "held"
	EventInvalidInput EventType = "invalid_input"
	EventTurnComplete EventType = "turn_complete"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Player    string // Empty for game-level events
	Payload   any    // Type-specific data
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players []PlayerScore
	Config  GameConfig
}

// TurnStartedPayload contains data for turn started events
type TurnStartedPayload struct {
	Turn  int
	Score int
}

// RolledPayload contains data for rolled events
// TurnTotal is only meaningful when the roll did not bust
type RolledPayload struct {
	Roll      int
	Bust      bool
	TurnTotal int
	Score     int
}

// BustPayload contains data for bust events
type BustPayload struct {
	Roll      int
	Forfeited int // unbanked points lost
}

// HeldPayload contains data for held events
type HeldPayload struct {
	Points int
	Score  int
}

// InvalidInputPayload contains data for invalid input events
type InvalidInputPayload struct {
	Input string
}

// TurnCompletePayload contains data for turn complete events
type TurnCompletePayload struct {
	Result TurnResult
}

// GameCompletePayload contains data for game complete events
type GameCompletePayload struct {
	Outcome GameOutcome
}
