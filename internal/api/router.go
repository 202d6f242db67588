package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/snakearcade-go/internal/api/handler"
	"github.com/mcoot/snakearcade-go/internal/api/middleware"
	"github.com/mcoot/snakearcade-go/internal/services/identity"
	"github.com/mcoot/snakearcade-go/internal/services/leaderboard"
	"github.com/mcoot/snakearcade-go/internal/services/presence"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	IdentityService    *identity.Service
	LeaderboardService *leaderboard.Service
	PresenceService    *presence.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.IdentityService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	playersHandler := handler.NewPlayersHandler(cfg.PresenceService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.IdentityService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Auth routes (signup/login are open)
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	r.Handle("/auth/logout", authMiddleware(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodPost)
	r.Handle("/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	// Leaderboard routes (reads are open, submission requires auth)
	r.HandleFunc("/leaderboard", leaderboardHandler.List).Methods(http.MethodGet)
	r.Handle("/leaderboard", authMiddleware(http.HandlerFunc(leaderboardHandler.Submit))).Methods(http.MethodPost)

	// Active-player snapshot routes (open, read-only)
	r.HandleFunc("/active-players", playersHandler.ListActive).Methods(http.MethodGet)
	r.HandleFunc("/active-players/{id}", playersHandler.GetActive).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
