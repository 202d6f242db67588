package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/snakearcade-go/internal/api/apierr"
	"github.com/mcoot/snakearcade-go/internal/api/middleware"
	"github.com/mcoot/snakearcade-go/internal/api/request"
	"github.com/mcoot/snakearcade-go/internal/api/response"
	"github.com/mcoot/snakearcade-go/internal/services/identity"
)

// AuthHandler handles account and authentication endpoints
type AuthHandler struct {
	identityService *identity.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService *identity.Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	if req.Email == "" {
		apierr.WriteInvalidRequest(w, "email is required")
		return
	}
	if req.Password == "" {
		apierr.WriteInvalidRequest(w, "password is required")
		return
	}

	user, err := h.identityService.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.OK(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteInvalidRequest(w, "invalid request body")
		return
	}

	user, tok, err := h.identityService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.LoginOK(w, response.UserFromModel(user), tok)
}

// Logout handles POST /auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; clients simply discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.OK(w, http.StatusOK, nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.OK(w, http.StatusOK, response.UserFromModel(user))
}
