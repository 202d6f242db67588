package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUsernameRequired = errors.New("username is required")

	// Leaderboard errors
	ErrInvalidMode   = errors.New("invalid game mode")
	ErrNegativeScore = errors.New("score must be non-negative")
)
