package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/pig-go/internal/api/request"
	"github.com/mcoot/pig-go/internal/api/response"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/match"
	"github.com/mcoot/pig-go/internal/services/turn"
)

// DefaultListLimit is the number of matches listed when no limit is given
const DefaultListLimit = 20

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	matchService *match.Service
	observer     turn.Observer
	logger       *slog.Logger
}

// NewMatchHandler creates a new match handler. observer receives the events
// of every match run and may be nil.
func NewMatchHandler(matchService *match.Service, observer turn.Observer, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		observer:     observer,
		logger:       logger.With(slog.String("component", "match-handler")),
	}
}

// Run handles POST /api/v1/matches
func (h *MatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req request.RunMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	matchReq, err := req.ToMatchRequest()
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := h.matchService.Run(r.Context(), matchReq, match.Options{Observer: h.observer})
	if err != nil {
		h.logger.Warn("match failed", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}

	response.Created(w, response.MatchSummaryFromModel(summary, true))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	summary, err := h.matchService.GetSummary(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchSummaryFromModel(summary, true))
}

// List handles GET /api/v1/matches?limit=N
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	summaries, err := h.matchService.ListSummaries(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchListFromModel(summaries))
}
