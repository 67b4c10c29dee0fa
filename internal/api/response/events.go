package response

import (
	"time"

	"github.com/mcoot/pig-go/internal/model"
)

// Event is the wire form of a game or turn event
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    string    `json:"game_id"`
	Player    string    `json:"player,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

// GameStarted is the payload of a game_started event
type GameStarted struct {
	Players []PlayerScore `json:"players"`
	Config  Config        `json:"config"`
}

// TurnStarted is the payload of a turn_started event
type TurnStarted struct {
	Turn  int `json:"turn"`
	Score int `json:"score"`
}

// Rolled is the payload of a rolled event
type Rolled struct {
	Roll      int  `json:"roll"`
	Bust      bool `json:"bust"`
	TurnTotal int  `json:"turn_total"`
	Score     int  `json:"score"`
}

// Bust is the payload of a bust event
type Bust struct {
	Roll      int `json:"roll"`
	Forfeited int `json:"forfeited"`
}

// Held is the payload of a held event
type Held struct {
	Points int `json:"points"`
	Score  int `json:"score"`
}

// InvalidInput is the payload of an invalid_input event
type InvalidInput struct {
	Input string `json:"input"`
}

// GameComplete is the payload of a game_complete event
type GameComplete struct {
	Reason    string        `json:"reason"`
	Scores    []PlayerScore `json:"scores"`
	Winner    *string       `json:"winner"`
	Tie       bool          `json:"tie"`
	Turns     int           `json:"turns"`
	ElapsedMS int64         `json:"elapsed_ms"`
}

// EventFromModel converts model.Event and its payload
func EventFromModel(e model.Event) Event {
	return Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		GameID:    string(e.GameID),
		Player:    e.Player,
		Payload:   payloadFromModel(e.Payload),
	}
}

func payloadFromModel(payload any) any {
	switch p := payload.(type) {
	case model.GameStartedPayload:
		return GameStarted{Players: scoresFromModel(p.Players), Config: ConfigFromModel(p.Config)}
	case model.TurnStartedPayload:
		return TurnStarted{Turn: p.Turn, Score: p.Score}
	case model.RolledPayload:
		return Rolled{Roll: p.Roll, Bust: p.Bust, TurnTotal: p.TurnTotal, Score: p.Score}
	case model.BustPayload:
		return Bust{Roll: p.Roll, Forfeited: p.Forfeited}
	case model.HeldPayload:
		return Held{Points: p.Points, Score: p.Score}
	case model.InvalidInputPayload:
		return InvalidInput{Input: p.Input}
	case model.TurnCompletePayload:
		return turnFromModel(p.Result)
	case model.GameCompletePayload:
		o := p.Outcome
		return GameComplete{
			Reason:    string(o.Reason),
			Scores:    scoresFromModel(o.Scores),
			Winner:    winnerFromModel(o),
			Tie:       o.Tie,
			Turns:     o.Turns,
			ElapsedMS: o.Elapsed.Milliseconds(),
		}
	default:
		return payload
	}
}
