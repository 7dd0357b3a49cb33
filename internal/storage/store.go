// Package storage keeps the leaderboard: per-variant scores and a record
// of every finished run, in a SQLite file opened through the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// InMemory opens a private database that vanishes on Close.
const InMemory = ":memory:"

// migrations are applied in order on every Open. Each must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT NOT NULL,
		score      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC)`,
	`CREATE TABLE IF NOT EXISTS runs (
		run_id        TEXT PRIMARY KEY,
		game_id       TEXT NOT NULL,
		score         INTEGER NOT NULL DEFAULT 0,
		status        TEXT NOT NULL,
		ghosts_eaten  INTEGER NOT NULL DEFAULT 0,
		pellets_eaten INTEGER NOT NULL DEFAULT 0,
		ticks         INTEGER NOT NULL DEFAULT 0,
		seed          INTEGER NOT NULL DEFAULT 0,
		duration_ms   INTEGER NOT NULL DEFAULT 0,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(game_id, created_at DESC)`,
}

// Store is the leaderboard database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and its directory as
// needed. A leading "~" expands to the home directory.
func Open(path string) (*Store, error) {
	if path != InMemory {
		expanded, err := expandHome(path)
		if err != nil {
			return nil, err
		}
		path = expanded
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create %s: %w", filepath.Dir(path), err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes
	// writers from concurrent sessions.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	for i, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// parseTime converts a DATETIME column. The driver hands back either a
// time.Time or SQLite's text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
