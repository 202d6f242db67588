package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/snakearcade-go/internal/dependencies/clock"
	"github.com/mcoot/snakearcade-go/internal/services/identity"
	"github.com/mcoot/snakearcade-go/internal/services/leaderboard"
	"github.com/mcoot/snakearcade-go/internal/services/presence"
	"github.com/mcoot/snakearcade-go/internal/storage"
	"github.com/mcoot/snakearcade-go/internal/storage/memory"
	"github.com/mcoot/snakearcade-go/internal/storage/sqlite"
	"github.com/mcoot/snakearcade-go/internal/token"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// Presence type constants
const (
	PresenceTypeMemory = "memory"
	PresenceTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Presence source; MemoryPresence is non-nil only for the memory
	// backend, where it doubles as the publish hook for the session
	// driver and dev seeding.
	Presence       presence.Source
	MemoryPresence *presence.MemorySource

	// External dependencies
	Clock  clock.Clock
	Signer *token.Signer

	// Services
	IdentityService    *identity.Service
	LeaderboardService *leaderboard.Service
	PresenceService    *presence.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database path (required if StorageType is "sqlite")
	SQLitePath string
	// PresenceType selects the snapshot source ("memory" or "redis")
	// If empty, defaults to "memory"
	PresenceType string
	// RedisConfig holds Redis settings (required if PresenceType is "redis")
	RedisConfig *presence.RedisConfig
	// TokenSecret signs bearer tokens
	TokenSecret []byte
	// TokenTTL bounds token lifetime; zero means the 30-minute default
	TokenTTL time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	app := &App{}

	// Create storage based on type
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		app.Storage = memory.New()
	case StorageTypeSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		app.Storage = store
		app.closers = append(app.closers, store)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}

	// Create presence source based on type
	presenceType := cfg.PresenceType
	if presenceType == "" {
		presenceType = PresenceTypeMemory
	}

	switch presenceType {
	case PresenceTypeMemory:
		src := presence.NewMemorySource()
		app.Presence = src
		app.MemoryPresence = src
	case PresenceTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when PresenceType is redis")
		}
		src, err := presence.NewRedisSource(*cfg.RedisConfig)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Presence = src
		app.closers = append(app.closers, src)
	default:
		app.Close()
		return nil, errors.New("invalid PresenceType: must be 'memory' or 'redis'")
	}

	secret := cfg.TokenSecret
	if len(secret) == 0 {
		return nil, errors.New("TokenSecret is required")
	}

	app.Clock = clock.New()
	app.Signer = token.NewSigner(secret, cfg.TokenTTL, app.Clock)

	app.IdentityService = identity.New(app.Storage, app.Signer, app.Clock, logger)
	app.LeaderboardService = leaderboard.New(app.Storage, app.Clock, logger)
	app.PresenceService = presence.New(app.Presence, logger)

	return app, nil
}

// Close releases backend connections held by the app
func (a *App) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}
