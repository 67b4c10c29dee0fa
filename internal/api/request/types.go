package request

import (
	"fmt"
	"time"

	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/match"
)

const (
	// MaxTargetScore bounds the target of a match run over the API
	MaxTargetScore = 10000
	// MaxTimeLimitSeconds bounds the time limit of a match run over the API
	MaxTimeLimitSeconds = 24 * 60 * 60
)

// Player is one seat of a match request
type Player struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Strategy string `json:"strategy,omitempty"`
}

// RunMatchRequest is the request body for running an automated match
type RunMatchRequest struct {
	Players          []Player `json:"players"`
	TargetScore      *int     `json:"target_score,omitempty"`
	Timed            bool     `json:"timed,omitempty"`
	TimeLimitSeconds int      `json:"time_limit_seconds,omitempty"`
	Seed             *uint64  `json:"seed,omitempty"`
}

// ToMatchRequest validates the body and converts it for the match service.
// Only computer players can take part; there is no way to answer for a
// human over a single request.
func (r RunMatchRequest) ToMatchRequest() (match.Request, error) {
	if len(r.Players) != 2 {
		return match.Request{}, fmt.Errorf("%w: exactly 2 players required, got %d", model.ErrInvalidConfig, len(r.Players))
	}
	if r.TargetScore != nil && *r.TargetScore > MaxTargetScore {
		return match.Request{}, fmt.Errorf("%w: target score must be at most %d", model.ErrInvalidConfig, MaxTargetScore)
	}
	if r.TimeLimitSeconds > MaxTimeLimitSeconds {
		return match.Request{}, fmt.Errorf("%w: time limit must be at most %d seconds", model.ErrInvalidConfig, MaxTimeLimitSeconds)
	}

	req := match.Request{
		TargetScore: r.TargetScore,
		Timed:       r.Timed || r.TimeLimitSeconds != 0,
		TimeLimit:   time.Duration(r.TimeLimitSeconds) * time.Second,
		Seed:        r.Seed,
	}
	for i, p := range r.Players {
		kind, err := model.ParsePlayerKind(p.Kind)
		if err != nil {
			return match.Request{}, err
		}
		if kind == model.PlayerKindHuman {
			return match.Request{}, fmt.Errorf("%w: player %d is human; only computer players can play over the API", model.ErrInvalidConfig, i+1)
		}
		req.Players[i] = model.PlayerSpec{Kind: kind, Name: p.Name, Strategy: p.Strategy}
	}
	return req, nil
}
