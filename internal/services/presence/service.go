// Package presence exposes read-only snapshots of currently active game
// sessions. The state is volatile and owned entirely by the external session
// driver; this backend never writes it, only reads whatever point-in-time
// view the source holds.
package presence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/snakearcade-go/internal/model"
)

// ErrNotActive indicates no active session exists for the requested id.
// The API surfaces this as success-with-null, not a hard error.
var ErrNotActive = errors.New("player is not active")

// Source supplies active-player snapshots. Implementations: in-process
// memory (single-node) and Redis (multi-process deployments).
type Source interface {
	List(ctx context.Context) ([]*model.ActivePlayer, error)
	Get(ctx context.Context, id string) (*model.ActivePlayer, error)
}

// Service is the read-only snapshot view handed to the API layer
type Service struct {
	source Source
	logger *slog.Logger
}

// New creates a new presence service
func New(source Source, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// List returns all currently active players, empty slice if none
func (s *Service) List(ctx context.Context) ([]*model.ActivePlayer, error) {
	players, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []*model.ActivePlayer{}
	}
	return players, nil
}

// Get returns the snapshot for one player, or ErrNotActive
func (s *Service) Get(ctx context.Context, id string) (*model.ActivePlayer, error) {
	return s.source.Get(ctx, id)
}
