package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/snakearcade-go/internal/api/apierr"
	"github.com/mcoot/snakearcade-go/internal/api/response"
	"github.com/mcoot/snakearcade-go/internal/services/presence"
)

// PlayersHandler handles active-player snapshot endpoints
type PlayersHandler struct {
	presenceService *presence.Service
}

// NewPlayersHandler creates a new players handler
func NewPlayersHandler(presenceService *presence.Service) *PlayersHandler {
	return &PlayersHandler{
		presenceService: presenceService,
	}
}

// ListActive handles GET /active-players
func (h *PlayersHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	players, err := h.presenceService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, players)
}

// GetActive handles GET /active-players/{id}.
// An unknown id is a soft not-found: success with null data, matching the
// calling convention used across the API.
func (h *PlayersHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	player, err := h.presenceService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, presence.ErrNotActive) {
			response.OK(w, http.StatusOK, nil)
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusOK, player)
}
