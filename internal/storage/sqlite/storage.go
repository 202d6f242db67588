// Package sqlite provides the SQLite-backed production storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/mcoot/snakearcade-go/internal/model"
	"github.com/mcoot/snakearcade-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id          TEXT PRIMARY KEY,
	username    TEXT NOT NULL,
	email       TEXT NOT NULL UNIQUE,
	password    TEXT NOT NULL,
	high_score  INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS leaderboard_entries (
	id           TEXT PRIMARY KEY,
	username     TEXT NOT NULL,
	score        INTEGER NOT NULL,
	mode         TEXT NOT NULL,
	submitted_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_mode_score
	ON leaderboard_entries (mode, score DESC);
`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens (creating if needed) a SQLite store at the given path
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password, high_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(user.ID), user.Username, user.Email, user.PasswordHash,
		user.HighScore, toMillis(user.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, high_score, created_at
		 FROM users WHERE id = ?`, string(id))
	return scanUser(row)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, high_score, created_at
		 FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		user      model.User
		id        string
		createdAt int64
	)
	err := row.Scan(&id, &user.Username, &user.Email, &user.PasswordHash,
		&user.HighScore, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.ID = model.UserID(id)
	user.CreatedAt = fromMillis(createdAt)
	return &user, nil
}

// Leaderboard operations

func (s *Storage) RecordScore(ctx context.Context, userID model.UserID, entry *model.LeaderboardEntry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET high_score = ? WHERE id = ? AND high_score < ?`,
		entry.Score, string(userID), entry.Score)
	if err != nil {
		return 0, fmt.Errorf("update high score: %w", err)
	}
	if _, err := res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("update high score: %w", err)
	}

	// The high-score update is conditional, so zero rows affected is normal.
	// Still require the user to exist before inserting on their behalf.
	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE id = ?`, string(userID)).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if exists == 0 {
		return 0, model.ErrUserNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO leaderboard_entries (id, username, score, mode, submitted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(entry.ID), entry.Username, entry.Score, string(entry.Mode),
		toMillis(entry.SubmittedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	var greater int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leaderboard_entries WHERE mode = ? AND score > ?`,
		string(entry.Mode), entry.Score).Scan(&greater)
	if err != nil {
		return 0, fmt.Errorf("count greater scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return greater, nil
}

func (s *Storage) ListEntries(ctx context.Context, mode *model.GameMode) ([]*model.LeaderboardEntry, error) {
	query := `SELECT id, username, score, mode, submitted_at
		 FROM leaderboard_entries`
	args := []any{}
	if mode != nil {
		query += ` WHERE mode = ?`
		args = append(args, string(*mode))
	}
	query += ` ORDER BY score DESC, submitted_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*model.LeaderboardEntry
	for rows.Next() {
		var (
			entry       model.LeaderboardEntry
			id, entMode string
			submittedAt int64
		)
		if err := rows.Scan(&id, &entry.Username, &entry.Score, &entMode, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.ID = model.EntryID(id)
		entry.Mode = model.GameMode(entMode)
		entry.SubmittedAt = fromMillis(submittedAt)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
