package handler

import (
	"net/http"

	"github.com/mcoot/pig-go/internal/api/sse"
	"github.com/mcoot/pig-go/internal/model"
)

// EventsHandler streams live match events
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles GET /api/v1/events, optionally filtered by ?game=ID
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub, model.GameID(r.URL.Query().Get("game")))
}
