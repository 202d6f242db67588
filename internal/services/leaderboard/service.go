package leaderboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/snakearcade-go/internal/dependencies/clock"
	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/storage"
)

// RankedEntry pairs a leaderboard entry with its derived rank
type RankedEntry struct {
	Entry *model.LeaderboardEntry
	Rank  int
}

// Service computes ranked leaderboard views and records score submissions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// ListRanked returns entries ordered by score descending with 1-based
// positional ranks. Ties get sequentially distinct ranks; the tie-break is
// submission time, earlier first, so repeated reads are stable. A nil mode
// returns the combined board.
//
// Note the asymmetry with SubmitScore: reads rank positionally, submissions
// rank by counting strictly greater scores. Clients depend on both rules
// as they stand, so neither is normalized onto the other.
func (s *Service) ListRanked(ctx context.Context, mode *model.GameMode) ([]RankedEntry, error) {
	entries, err := s.storage.ListEntries(ctx, mode)
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedEntry, len(entries))
	for i, entry := range entries {
		ranked[i] = RankedEntry{Entry: entry, Rank: i + 1}
	}
	return ranked, nil
}

// SubmitScore records a game result for the given user: it raises the
// user's high score when beaten, inserts a leaderboard entry with the
// username snapshotted at submission time, and returns the entry with its
// rank. Rank here is 1 + the count of same-mode entries with a strictly
// greater score, so a tying entry does not get pushed down. The high-score
// update and the insert commit atomically.
func (s *Service) SubmitScore(ctx context.Context, user *model.User, score int, mode model.GameMode) (*model.LeaderboardEntry, int, error) {
	if score < 0 {
		return nil, 0, model.ErrNegativeScore
	}

	entry := &model.LeaderboardEntry{
		ID:          model.EntryID(uuid.NewString()),
		Username:    user.Username,
		Score:       score,
		Mode:        mode,
		SubmittedAt: s.clock.Now(),
	}

	greater, err := s.storage.RecordScore(ctx, user.ID, entry)
	if err != nil {
		return nil, 0, err
	}

	rank := greater + 1
	s.logger.Info("score submitted",
		slog.String("user_id", string(user.ID)),
		slog.Int("score", score),
		slog.String("mode", string(mode)),
		slog.Int("rank", rank),
	)
	return entry, rank, nil
}
