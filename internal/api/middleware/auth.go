package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/snakearcade-go/internal/api/apierr"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/services/identity"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth creates authentication middleware. It resolves the bearer token to a
// live account before the handler runs; failures short-circuit with the
// distinguished unauthorized response, never the soft envelope.
func Auth(identityService *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractToken(r)
			if tok == "" {
				apierr.WriteUnauthorized(w)
				return
			}

			user, err := identityService.ResolveToken(r.Context(), tok)
			if err != nil {
				apierr.WriteUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUser returns the authenticated user from the request context
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// MustGetUser returns the authenticated user or panics
func MustGetUser(ctx context.Context) *model.User {
	user := GetUser(ctx)
	if user == nil {
		panic("no user in context - auth middleware not applied?")
	}
	return user
}
