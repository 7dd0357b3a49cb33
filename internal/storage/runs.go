package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("storage: run not found")

// Run is the record of one finished game.
type Run struct {
	RunID        string
	GameID       string
	Score        int
	Status       string // session status name at the end of the run
	GhostsEaten  int
	PelletsEaten int
	Ticks        uint64
	Seed         int64
	Duration     time.Duration
	CreatedAt    time.Time
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// SaveRun records a finished run. An empty RunID is filled in.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	} else if _, err := uuid.Parse(r.RunID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, status, ghosts_eaten, pellets_eaten, ticks, seed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Score, r.Status, r.GhostsEaten, r.PelletsEaten,
		int64(r.Ticks), r.Seed, r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

const runColumns = `run_id, game_id, score, status, ghosts_eaten, pellets_eaten, ticks, seed, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var ticks, durationMS int64
	var createdAt any
	if err := row.Scan(&r.RunID, &r.GameID, &r.Score, &r.Status, &r.GhostsEaten, &r.PelletsEaten,
		&ticks, &r.Seed, &durationMS, &createdAt); err != nil {
		return r, err
	}
	r.Ticks = uint64(ticks)
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves one run.
func (s *Store) RunByID(runID string) (Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID))
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get run: %w", err)
	}
	return r, nil
}

// RecentRuns returns the latest runs for a variant, newest first. An empty
// gameID lists every variant.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
