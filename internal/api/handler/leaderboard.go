package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/snakearcade-go/internal/api/apierr"
	"github.com/mcoot/snakearcade-go/internal/api/middleware"
	"github.com/mcoot/snakearcade-go/internal/api/request"
	"github.com/mcoot/snakearcade-go/internal/api/response"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// List handles GET /leaderboard with an optional ?mode= filter
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	var mode *model.GameMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := model.ParseGameMode(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		mode = &parsed
	}

	ranked, err := h.leaderboardService.ListRanked(r.Context(), mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, response.EntriesFromRanked(ranked))
}

// Submit handles POST /leaderboard (authenticated)
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	mode, err := model.ParseGameMode(req.Mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	entry, rank, err := h.leaderboardService.SubmitScore(r.Context(), user, req.Score, mode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, response.EntryFromModel(entry, rank))
}
