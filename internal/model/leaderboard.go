package model

import "time"

// EntryID uniquely identifies a leaderboard entry
type EntryID string

// GameMode is the closed set of game rule variants
type GameMode string

const (
	// ModeWalls ends the game when the snake hits a wall
	ModeWalls GameMode = "walls"
	// ModePassThrough wraps the snake around the board edges
	ModePassThrough GameMode = "pass-through"
)

// ParseGameMode validates a mode string from external input
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeWalls, ModePassThrough:
		return GameMode(s), nil
	default:
		return "", ErrInvalidMode
	}
}

// LeaderboardEntry is a single recorded game result.
// Username is a snapshot taken at submission time, not a live reference to
// the account, so leaderboard history survives account changes unchanged.
// Rank is never stored; it is derived at read time.
type LeaderboardEntry struct {
	ID          EntryID
	Username    string
	Score       int
	Mode        GameMode
	SubmittedAt time.Time
}
