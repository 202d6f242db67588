// Package apierr maps domain errors onto the API's failure taxonomy:
// soft failures ride the normal envelope with success=false, authentication
// failures are a hard 401 so clients can intercept them uniformly, and
// anything else is a generic 500.
package apierr

import (
	"errors"
	"net/http"

	"github.com/mcoot/snakearcade-go/internal/api/response"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/services/identity"
	"github.com/mcoot/snakearcade-go/internal/token"
)

// softMessage returns the envelope error string for domain-level failures
// the client is expected to handle, or ok=false for everything else.
func softMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return "Email already registered", true
	case errors.Is(err, model.ErrUsernameRequired):
		return "Username is required", true
	case errors.Is(err, model.ErrInvalidMode):
		return "Invalid game mode", true
	case errors.Is(err, model.ErrNegativeScore):
		return "Score must be non-negative", true
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Invalid credentials", true
	default:
		return "", false
	}
}

// isAuthError reports whether the error means the caller is unauthenticated
func isAuthError(err error) bool {
	return errors.Is(err, token.ErrInvalidToken) ||
		errors.Is(err, token.ErrExpiredToken) ||
		errors.Is(err, model.ErrUserNotFound)
}

// WriteError writes the appropriate failure response for err
func WriteError(w http.ResponseWriter, err error) {
	if msg, ok := softMessage(err); ok {
		response.Fail(w, http.StatusOK, msg)
		return
	}
	if isAuthError(err) {
		WriteUnauthorized(w)
		return
	}
	response.Fail(w, http.StatusInternalServerError, "Internal server error")
}

// WriteUnauthorized writes the distinguished unauthenticated failure
func WriteUnauthorized(w http.ResponseWriter) {
	response.Fail(w, http.StatusUnauthorized, "Could not validate credentials")
}

// WriteInvalidRequest writes a malformed-request failure
func WriteInvalidRequest(w http.ResponseWriter, msg string) {
	response.Fail(w, http.StatusBadRequest, msg)
}
