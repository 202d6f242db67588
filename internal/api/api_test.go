package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/snakearcade-go/internal/factory"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.App
	server *httptest.Server
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	app, err := factory.New(factory.Config{
		Logger:      testutil.NopLogger(),
		StorageType: factory.StorageTypeMemory,
		TokenSecret: []byte("test-secret"),
	})
	s.Require().NoError(err)
	s.app = app

	router := NewRouter(RouterConfig{
		Logger:             testutil.NopLogger(),
		IdentityService:    app.IdentityService,
		LeaderboardService: app.LeaderboardService,
		PresenceService:    app.PresenceService,
	})
	s.server = httptest.NewServer(router)
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
	s.app.Close()
}

// request performs a JSON request and decodes the response body into a map
func (s *APISuite) request(method, path, token string, body any) (int, map[string]any) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func (s *APISuite) signup(email, username, password string) map[string]any {
	status, body := s.request(http.MethodPost, "/auth/signup", "", map[string]any{
		"email":    email,
		"username": username,
		"password": password,
	})
	s.Require().Equal(http.StatusCreated, status)
	s.Require().Equal(true, body["success"])
	return body
}

func (s *APISuite) login(email, password string) string {
	status, body := s.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal(true, body["success"])
	token, ok := body["token"].(string)
	s.Require().True(ok, "login response must carry a top-level token")
	s.Require().NotEmpty(token)
	return token
}

func (s *APISuite) submit(token string, score int, mode string) map[string]any {
	status, body := s.request(http.MethodPost, "/leaderboard", token, map[string]any{
		"score": score,
		"mode":  mode,
	})
	s.Require().Equal(http.StatusCreated, status)
	s.Require().Equal(true, body["success"])
	return body
}

// Auth flow

func (s *APISuite) TestSignupReturnsRedactedUser() {
	body := s.signup("alice@example.com", "Alice", "password123")

	data, ok := body["data"].(map[string]any)
	s.Require().True(ok)
	s.Equal("Alice", data["username"])
	s.Equal("alice@example.com", data["email"])
	s.Equal(float64(0), data["highScore"])
	s.NotEmpty(data["id"])
	s.NotEmpty(data["createdAt"])
	s.NotContains(data, "password")
	s.NotContains(data, "passwordHash")
}

func (s *APISuite) TestSignupDuplicateEmailIsSoftFailure() {
	s.signup("alice@example.com", "Alice", "password123")

	status, body := s.request(http.MethodPost, "/auth/signup", "", map[string]any{
		"email":    "alice@example.com",
		"username": "Alice2",
		"password": "different",
	})
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.Equal("Email already registered", body["error"])
}

func (s *APISuite) TestSignupWithoutUsernameIsSoftFailure() {
	status, body := s.request(http.MethodPost, "/auth/signup", "", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	})
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])
}

func (s *APISuite) TestLoginWrongPasswordIsSoftFailure() {
	s.signup("alice@example.com", "Alice", "password123")

	status, body := s.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.Equal("Invalid credentials", body["error"])
}

func (s *APISuite) TestLoginUnknownEmailMatchesWrongPassword() {
	status, body := s.request(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.Equal("Invalid credentials", body["error"])
}

func (s *APISuite) TestMeReflectsLiveAccountState() {
	s.signup("alice@example.com", "Alice", "password123")
	token := s.login("alice@example.com", "password123")

	s.submit(token, 150, string(model.ModeWalls))

	status, body := s.request(http.MethodGet, "/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal(true, body["success"])

	data := body["data"].(map[string]any)
	s.Equal("Alice", data["username"])
	s.Equal(float64(150), data["highScore"])
}

func (s *APISuite) TestLogout() {
	s.signup("alice@example.com", "Alice", "password123")
	token := s.login("alice@example.com", "password123")

	status, body := s.request(http.MethodPost, "/auth/logout", token, nil)
	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
}

func (s *APISuite) TestProtectedRoutesRejectMissingToken() {
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/auth/logout"},
		{http.MethodPost, "/leaderboard"},
	} {
		status, body := s.request(route.method, route.path, "", nil)
		s.Equal(http.StatusUnauthorized, status, "%s %s", route.method, route.path)
		s.Equal(false, body["success"])
		s.Equal("Could not validate credentials", body["error"])
	}
}

func (s *APISuite) TestProtectedRoutesRejectGarbageToken() {
	status, body := s.request(http.MethodGet, "/auth/me", "not-a-token", nil)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal(false, body["success"])
	s.Equal("Could not validate credentials", body["error"])
}

// Leaderboard flow

func (s *APISuite) TestSubmitScoreReportsStandingAtSubmission() {
	s.signup("alice@example.com", "Alice", "password123")
	s.signup("bob@example.com", "Bob", "password456")
	alice := s.login("alice@example.com", "password123")
	bob := s.login("bob@example.com", "password456")

	body := s.submit(alice, 100, string(model.ModeWalls))
	data := body["data"].(map[string]any)
	s.Equal(float64(1), data["rank"])
	s.Equal(float64(100), data["score"])
	s.Equal("Alice", data["username"])
	s.Equal(string(model.ModeWalls), data["mode"])
	s.NotEmpty(data["date"])

	body = s.submit(bob, 50, string(model.ModeWalls))
	s.Equal(float64(2), body["data"].(map[string]any)["rank"])

	body = s.submit(bob, 200, string(model.ModeWalls))
	s.Equal(float64(1), body["data"].(map[string]any)["rank"])
}

func (s *APISuite) TestListRanked() {
	s.signup("alice@example.com", "Alice", "password123")
	s.signup("bob@example.com", "Bob", "password456")
	alice := s.login("alice@example.com", "password123")
	bob := s.login("bob@example.com", "password456")

	s.submit(alice, 100, string(model.ModeWalls))
	s.submit(bob, 50, string(model.ModeWalls))
	s.submit(bob, 200, string(model.ModeWalls))

	status, body := s.request(http.MethodGet, "/leaderboard", "", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal(true, body["success"])

	entries := body["data"].([]any)
	s.Require().Len(entries, 3)

	first := entries[0].(map[string]any)
	s.Equal("Bob", first["username"])
	s.Equal(float64(200), first["score"])
	s.Equal(float64(1), first["rank"])

	second := entries[1].(map[string]any)
	s.Equal("Alice", second["username"])
	s.Equal(float64(2), second["rank"])

	third := entries[2].(map[string]any)
	s.Equal(float64(50), third["score"])
	s.Equal(float64(3), third["rank"])
}

func (s *APISuite) TestListRankedModeFilter() {
	s.signup("alice@example.com", "Alice", "password123")
	alice := s.login("alice@example.com", "password123")

	s.submit(alice, 100, string(model.ModeWalls))
	s.submit(alice, 300, string(model.ModePassThrough))

	status, body := s.request(http.MethodGet, "/leaderboard?mode=pass-through", "", nil)
	s.Require().Equal(http.StatusOK, status)

	entries := body["data"].([]any)
	s.Require().Len(entries, 1)
	entry := entries[0].(map[string]any)
	s.Equal("pass-through", entry["mode"])
	s.Equal(float64(300), entry["score"])
	s.Equal(float64(1), entry["rank"])
}

func (s *APISuite) TestListRankedInvalidModeIsSoftFailure() {
	status, body := s.request(http.MethodGet, "/leaderboard?mode=bogus", "", nil)
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])
}

func (s *APISuite) TestSubmitNegativeScoreIsSoftFailure() {
	s.signup("alice@example.com", "Alice", "password123")
	token := s.login("alice@example.com", "password123")

	status, body := s.request(http.MethodPost, "/leaderboard", token, map[string]any{
		"score": -5,
		"mode":  string(model.ModeWalls),
	})
	s.Equal(http.StatusOK, status)
	s.Equal(false, body["success"])
	s.NotEmpty(body["error"])
}

func (s *APISuite) TestSubmitInvalidBodyIsBadRequest() {
	s.signup("alice@example.com", "Alice", "password123")
	token := s.login("alice@example.com", "password123")

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/leaderboard",
		bytes.NewReader([]byte("{not json")))
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

// Active-player snapshots

func (s *APISuite) TestActivePlayers() {
	s.app.MemoryPresence.Publish(&model.ActivePlayer{
		ID:        "active-1",
		Username:  "LivePlayer42",
		Score:     340,
		Mode:      model.ModeWalls,
		Snake:     []model.Position{{X: 5, Y: 5}, {X: 5, Y: 6}},
		Food:      model.Position{X: 2, Y: 3},
		Direction: model.DirectionUp,
		Status:    model.StatusPlaying,
	})

	status, body := s.request(http.MethodGet, "/active-players", "", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal(true, body["success"])

	players := body["data"].([]any)
	s.Require().Len(players, 1)

	player := players[0].(map[string]any)
	s.Equal("LivePlayer42", player["username"])
	s.Equal(float64(340), player["score"])
	s.Equal("playing", player["status"])
	s.Equal("UP", player["direction"])

	snake := player["snake"].([]any)
	s.Require().Len(snake, 2)
	head := snake[0].(map[string]any)
	s.Equal(float64(5), head["x"])
	s.Equal(float64(5), head["y"])

	status, body = s.request(http.MethodGet, "/active-players/active-1", "", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(true, body["success"])
	s.Equal("LivePlayer42", body["data"].(map[string]any)["username"])
}

func (s *APISuite) TestActivePlayersEmptyList() {
	status, body := s.request(http.MethodGet, "/active-players", "", nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(true, body["success"])

	players, ok := body["data"].([]any)
	s.Require().True(ok, "empty listing must be an array, not null")
	s.Empty(players)
}

func (s *APISuite) TestUnknownActivePlayerIsSoftNull() {
	status, body := s.request(http.MethodGet, "/active-players/nobody", "", nil)
	s.Equal(http.StatusOK, status)
	s.Equal(true, body["success"])

	data, present := body["data"]
	s.True(present, "data must be present and explicitly null")
	s.Nil(data)
}

// Health

func (s *APISuite) TestHealth() {
	resp, err := s.server.Client().Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("ok", body["status"])
}

// Token lifecycle against the real clock: issue with a tiny TTL and let it lapse

func (s *APISuite) TestExpiredTokenIsRejected() {
	app, err := factory.New(factory.Config{
		Logger:      testutil.NopLogger(),
		StorageType: factory.StorageTypeMemory,
		TokenSecret: []byte("test-secret"),
		TokenTTL:    time.Millisecond,
	})
	s.Require().NoError(err)
	defer app.Close()

	router := NewRouter(RouterConfig{
		Logger:             testutil.NopLogger(),
		IdentityService:    app.IdentityService,
		LeaderboardService: app.LeaderboardService,
		PresenceService:    app.PresenceService,
	})
	server := httptest.NewServer(router)
	defer server.Close()

	doJSON := func(method, path, token string, body any) (int, map[string]any) {
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			s.Require().NoError(err)
			reader = bytes.NewReader(data)
		}
		req, err := http.NewRequest(method, server.URL+path, reader)
		s.Require().NoError(err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := server.Client().Do(req)
		s.Require().NoError(err)
		defer func() { _ = resp.Body.Close() }()
		var decoded map[string]any
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
		return resp.StatusCode, decoded
	}

	status, _ := doJSON(http.MethodPost, "/auth/signup", "", map[string]any{
		"email":    "alice@example.com",
		"username": "Alice",
		"password": "password123",
	})
	s.Require().Equal(http.StatusCreated, status)

	status, body := doJSON(http.MethodPost, "/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	})
	s.Require().Equal(http.StatusOK, status)
	token := body["token"].(string)

	// jwt validation allows a small leeway of zero here; the claim carries
	// second precision, so wait past a full second boundary
	time.Sleep(1100 * time.Millisecond)

	status, body = doJSON(http.MethodGet, "/auth/me", token, nil)
	s.Equal(http.StatusUnauthorized, status)
	s.Equal(false, body["success"])
	s.Equal("Could not validate credentials", body["error"])
}
