// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration
type Config struct {
	Host string `env:"SNAKEARCADE_HOST" envDefault:""`
	Port int    `env:"SNAKEARCADE_PORT" envDefault:"8000"`

	// StorageType selects the durable store: "memory" or "sqlite"
	StorageType string `env:"SNAKEARCADE_STORAGE" envDefault:"memory"`
	SQLitePath  string `env:"SNAKEARCADE_SQLITE_PATH" envDefault:"snakearcade.db"`

	// PresenceType selects the active-player snapshot source:
	// "memory" or "redis"
	PresenceType string `env:"SNAKEARCADE_PRESENCE" envDefault:"memory"`
	RedisURL     string `env:"SNAKEARCADE_REDIS_URL" envDefault:"redis://localhost:6379"`

	// TokenSecret signs bearer tokens; TokenTTL bounds their lifetime
	TokenSecret string        `env:"SNAKEARCADE_TOKEN_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL    time.Duration `env:"SNAKEARCADE_TOKEN_TTL" envDefault:"30m"`

	// Seed loads demo leaderboard and active-player data at startup
	Seed bool `env:"SNAKEARCADE_SEED" envDefault:"false"`

	// LogLevel sets the slog level: debug, info, warn or error
	LogLevel string `env:"SNAKEARCADE_LOG_LEVEL" envDefault:"info"`
}

// SlogLevel maps the configured level name onto a slog.Level,
// defaulting to info for unknown values
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load parses configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
