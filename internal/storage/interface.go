package storage

import (
	"context"

	"github.com/mcoot/snakearcade-go/internal/model"
)

// Storage defines the interface for durable data persistence.
// Accounts and leaderboard entries live here; active-player state does not
// (it is volatile and owned by the session driver, see services/presence).
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// RecordScore atomically raises the user's high score (when the new
	// score beats it) and inserts the leaderboard entry. Either both
	// writes commit or neither is visible. It returns the number of
	// entries in the same mode with a strictly greater score, evaluated
	// within the same transaction as the insert.
	RecordScore(ctx context.Context, userID model.UserID, entry *model.LeaderboardEntry) (greater int, err error)

	// ListEntries returns leaderboard entries ordered by score descending,
	// ties broken by submission time (earlier first). A nil mode returns
	// all entries; otherwise only entries of that mode.
	ListEntries(ctx context.Context, mode *model.GameMode) ([]*model.LeaderboardEntry, error)
}
