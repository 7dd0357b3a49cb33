package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one leaderboard score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SaveScore adds a score to a variant's leaderboard and returns its row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read score id: %w", err)
	}
	return id, nil
}

// TopScores returns a variant's best scores, highest first. Equal scores
// keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			ts any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &ts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return out, nil
}

// HighScore returns a variant's best score, 0 when it has none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes a variant's scores and run history.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin clear: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, table := range []string{"scores", "runs"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE game_id = ?`, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}
