package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/pig-go/internal/api/response"
	"github.com/mcoot/pig-go/internal/model"
)

// Observer publishes game events to a Hub, named by event type with the
// JSON event as data
type Observer struct {
	hub    *Hub
	logger *slog.Logger
}

// NewObserver creates an Observer for hub
func NewObserver(hub *Hub, logger *slog.Logger) *Observer {
	return &Observer{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-observer")),
	}
}

// Observe implements turn.Observer
func (o *Observer) Observe(e model.Event) {
	data, err := json.Marshal(response.EventFromModel(e))
	if err != nil {
		o.logger.Error("failed to encode event",
			slog.String("type", string(e.Type)),
			slog.Any("error", err))
		return
	}
	o.hub.BroadcastEvent(e.GameID, string(e.Type), string(data))
}
