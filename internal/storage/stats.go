package storage

import (
	"fmt"
	"time"
)

// VariantStats summarizes the recorded runs of one variant.
type VariantStats struct {
	GameID     string
	Runs       int
	Wins       int
	BestScore  int
	AvgScore   float64
	MostGhosts int
	TotalTicks int64
	LastPlayed time.Time
}

const statsAggregates = `COUNT(*), COALESCE(SUM(status = 'won'), 0), COALESCE(MAX(score), 0),
	COALESCE(AVG(score), 0), COALESCE(MAX(ghosts_eaten), 0), COALESCE(SUM(ticks), 0), MAX(created_at)`

func scanStats(row rowScanner) (*VariantStats, error) {
	var (
		st   VariantStats
		last any
	)
	if err := row.Scan(&st.GameID, &st.Runs, &st.Wins, &st.BestScore, &st.AvgScore,
		&st.MostGhosts, &st.TotalTicks, &last); err != nil {
		return nil, err
	}
	st.LastPlayed = parseTime(last)
	return &st, nil
}

// Stats summarizes one variant. A variant without runs yields zero stats.
func (s *Store) Stats(gameID string) (*VariantStats, error) {
	st, err := scanStats(s.db.QueryRow(
		`SELECT ?, `+statsAggregates+` FROM runs WHERE game_id = ?`, gameID, gameID))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// AllStats summarizes every variant that has runs, keyed by variant ID.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(`SELECT game_id, ` + statsAggregates + ` FROM runs GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*VariantStats)
	for rows.Next() {
		st, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
		}
		out[st.GameID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read stats: %w", err)
	}
	return out, nil
}
