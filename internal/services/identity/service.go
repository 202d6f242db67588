package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/snakearcade-go/internal/dependencies/clock"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/storage"
	"github.com/mcoot/snakearcade-go/internal/token"
)

// Errors
var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so that login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles account registration and token-based authentication
type Service struct {
	storage storage.Storage
	signer  *token.Signer
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new identity service
func New(storage storage.Storage, signer *token.Signer, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		signer:  signer,
		clock:   clk,
		logger:  logger,
	}
}

// Register creates a new account with a zero high score.
// The returned user carries the bcrypt hash internally; callers shaping API
// responses must use the redacted response type, never the model directly.
func (s *Service) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	if username == "" {
		return nil, model.ErrUsernameRequired
	}

	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		HighScore:    0,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("user_id", string(user.ID)))
	return user, nil
}

// Login authenticates an account by email and issues a signed, time-boxed
// bearer token bound to that email.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.signer.Issue(user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, tok, nil
}

// ResolveToken verifies a bearer token and re-resolves the bound account
// from storage. The lookup is always live, never cached, so account changes
// (a raised high score, say) are immediately visible to the caller.
func (s *Service) ResolveToken(ctx context.Context, tokenStr string) (*model.User, error) {
	email, err := s.signer.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}
