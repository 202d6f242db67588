package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform wrapper around every API response. Data is kept
// un-omitted so that soft not-found results serialize as data:null.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// LoginEnvelope additionally carries the bearer token at the top level,
// alongside the normal envelope fields. Clients read token from the
// envelope, not from data.
type LoginEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Token   string `json:"token"`
}

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// OK writes a success envelope wrapping data
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with a human-readable error string.
// Domain-level failures use this with a 2xx status (soft failure);
// auth and server failures use 401/500.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: msg})
}

// LoginOK writes a success envelope with the top-level token field
func LoginOK(w http.ResponseWriter, data any, token string) {
	JSON(w, http.StatusOK, LoginEnvelope{Success: true, Data: data, Token: token})
}
