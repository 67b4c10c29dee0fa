package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pig-go/internal/api/response"
	"github.com/mcoot/pig-go/internal/services/match"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	matchService *match.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(matchService *match.Service) *PlayerHandler {
	return &PlayerHandler{
		matchService: matchService,
	}
}

// Stats handles GET /api/v1/players/{name}/stats
func (h *PlayerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	stats, err := h.matchService.GetPlayerStats(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(stats))
}
