package response

import (
	"time"

	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/services/leaderboard"
)

// User represents an account in API responses. The credential hash is
// deliberately absent: this is the only shape accounts leave the server in.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	HighScore int       `json:"highScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User to a redacted response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		HighScore: u.HighScore,
		CreatedAt: u.CreatedAt,
	}
}

// LeaderboardEntry represents a ranked entry in API responses.
// Rank is computed per request, never stored.
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Mode     string    `json:"mode"`
	Date     time.Time `json:"date"`
	Rank     int       `json:"rank"`
}

// EntryFromModel converts an entry and its rank to the response shape
func EntryFromModel(e *model.LeaderboardEntry, rank int) LeaderboardEntry {
	return LeaderboardEntry{
		ID:       string(e.ID),
		Username: e.Username,
		Score:    e.Score,
		Mode:     string(e.Mode),
		Date:     e.SubmittedAt,
		Rank:     rank,
	}
}

// EntriesFromRanked converts a ranked listing
func EntriesFromRanked(ranked []leaderboard.RankedEntry) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(ranked))
	for i, r := range ranked {
		entries[i] = EntryFromModel(r.Entry, r.Rank)
	}
	return entries
}
