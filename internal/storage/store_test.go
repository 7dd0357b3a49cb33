package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestScoresByVariant(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("ghostmaze", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("ghostmaze_hard", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("ghostmaze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{200, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(scores), len(want))
	}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	limited, err := store.TopScores("ghostmaze", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d scores", len(limited))
	}

	high, err := store.HighScore("ghostmaze_hard")
	if err != nil || high != 500 {
		t.Errorf("HighScore() = %d, %v; want 500", high, err)
	}
	if high, _ := store.HighScore("ghostmaze_easy"); high != 0 {
		t.Errorf("HighScore() of empty variant = %d, want 0", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("ghostmaze", 100)
	store.SaveScore("ghostmaze_easy", 300)
	if _, err := store.SaveRun(Run{GameID: "ghostmaze", Score: 100, Status: "won"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.ClearScores("ghostmaze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("ghostmaze", 10); len(scores) != 0 {
		t.Errorf("%d scores left after clear", len(scores))
	}
	if runs, _ := store.RecentRuns("ghostmaze", 10); len(runs) != 0 {
		t.Errorf("%d runs left after clear", len(runs))
	}
	if scores, _ := store.TopScores("ghostmaze_easy", 10); len(scores) != 1 {
		t.Error("clearing one variant affected another")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	runs := []Run{
		{GameID: "ghostmaze", Score: 100, Status: "won", GhostsEaten: 8, Ticks: 300},
		{GameID: "ghostmaze", Score: 300, Status: "won", GhostsEaten: 6, Ticks: 500},
		{GameID: "ghostmaze", Score: 200, Status: "playing", GhostsEaten: 2, Ticks: 100},
		{GameID: "ghostmaze_easy", Score: 50, Status: "won", GhostsEaten: 8, Ticks: 80},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	st, err := store.Stats("ghostmaze")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GameID != "ghostmaze" || st.Runs != 3 || st.Wins != 2 || st.BestScore != 300 ||
		st.AvgScore != 200 || st.MostGhosts != 8 || st.TotalTicks != 900 {
		t.Errorf("stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["ghostmaze_easy"] == nil || all["ghostmaze_easy"].Runs != 1 {
		t.Errorf("AllStats() = %v", all)
	}

	empty, err := store.Stats("ghostmaze_hard")
	if err != nil {
		t.Fatalf("Stats() on empty variant failed: %v", err)
	}
	if empty.GameID != "ghostmaze_hard" || empty.Runs != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestRunsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:       "ghostmaze",
		Score:        1850,
		Status:       "won",
		GhostsEaten:  8,
		PelletsEaten: 25,
		Ticks:        912,
		Seed:         42,
		Duration:     164 * time.Second,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() returned empty id")
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	run.RunID = id
	got.CreatedAt = time.Time{}
	if got != run {
		t.Errorf("RunByID() = %+v, want %+v", got, run)
	}

	if _, err := store.RunByID(NewRunID()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("missing run error = %v, want ErrRunNotFound", err)
	}
	if _, err := store.SaveRun(Run{RunID: "not-a-uuid", GameID: "ghostmaze", Status: "won"}); err == nil {
		t.Error("invalid run id accepted")
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{GameID: "ghostmaze", Score: i, Status: "won"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{GameID: "ghostmaze_easy", Score: 99, Status: "playing"})

	runs, err := store.RecentRuns("ghostmaze", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Score != 4 {
		t.Errorf("newest run score = %d, want 4", runs[0].Score)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("got %d runs across variants, want 6", len(all))
	}
}
