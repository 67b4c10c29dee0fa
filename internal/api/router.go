package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pig-go/internal/api/handler"
	"github.com/mcoot/pig-go/internal/api/middleware"
	"github.com/mcoot/pig-go/internal/api/response"
	"github.com/mcoot/pig-go/internal/api/sse"
	"github.com/mcoot/pig-go/internal/services/match"
	"github.com/mcoot/pig-go/internal/services/turn"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	MatchService *match.Service
	// EventHub enables the live event feed (optional)
	EventHub *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	var observer turn.Observer
	if cfg.EventHub != nil {
		observer = sse.NewObserver(cfg.EventHub, cfg.Logger)
	}
	matchHandler := handler.NewMatchHandler(cfg.MatchService, observer, cfg.Logger)
	playerHandler := handler.NewPlayerHandler(cfg.MatchService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Match routes
	api.HandleFunc("/matches", matchHandler.Run).Methods(http.MethodPost)
	api.HandleFunc("/matches", matchHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", matchHandler.Get).Methods(http.MethodGet)

	// Player routes
	api.HandleFunc("/players/{name}/stats", playerHandler.Stats).Methods(http.MethodGet)

	// Live event feed
	if cfg.EventHub != nil {
		eventsHandler := handler.NewEventsHandler(cfg.EventHub)
		api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)
	}

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
