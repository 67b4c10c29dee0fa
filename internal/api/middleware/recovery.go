package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/pig-go/internal/api/apierr"
	"github.com/mcoot/pig-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// JSON endpoints get an INTERNAL_ERROR body; an event stream has already
// sent its headers and is left to end.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "api")), apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	if strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream") {
		return
	}
	apierr.WriteError(w, apierr.NewInternalError())
}
