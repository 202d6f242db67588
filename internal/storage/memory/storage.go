package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It is the test fake and the dev default; production uses sqlite.
type Storage struct {
	mu sync.RWMutex

	users      map[model.UserID]*model.User
	emailIndex map[string]model.UserID
	entries    []*model.LeaderboardEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:      make(map[model.UserID]*model.User),
		emailIndex: make(map[string]model.UserID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emailIndex[user.Email]; ok {
		return model.ErrEmailTaken
	}
	u := *user
	s.users[u.ID] = &u
	s.emailIndex[u.Email] = u.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// Leaderboard operations

func (s *Storage) RecordScore(ctx context.Context, userID model.UserID, entry *model.LeaderboardEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, model.ErrUserNotFound
	}

	if entry.Score > user.HighScore {
		user.HighScore = entry.Score
	}

	e := *entry
	s.entries = append(s.entries, &e)

	greater := 0
	for _, other := range s.entries {
		if other.Mode == entry.Mode && other.Score > entry.Score {
			greater++
		}
	}
	return greater, nil
}

func (s *Storage) ListEntries(ctx context.Context, mode *model.GameMode) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.LeaderboardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if mode != nil && entry.Mode != *mode {
			continue
		}
		e := *entry
		entries = append(entries, &e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
	})

	return entries, nil
}
