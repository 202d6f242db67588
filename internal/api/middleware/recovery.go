package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/snakearcade-go/internal/api/response"
	"github.com/mcoot/snakearcade-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Returns an envelope-shaped failure on panic.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	response.Fail(w, http.StatusInternalServerError, "Internal server error")
}
