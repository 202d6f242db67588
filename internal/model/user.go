package model

import "time"

// UserID uniquely identifies a user account across the system
type UserID string

// User represents a registered player account.
// Email is the login key and is unique across all accounts.
type User struct {
	ID           UserID
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never exposed in API responses
	HighScore    int    // highest score ever achieved; only ever raised
	CreatedAt    time.Time
}
