package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

type stubGame struct {
	resets  int
	steps   int
	stopped bool
	score   int
	over    bool
	lastCfg core.RuntimeConfig
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State(), Ticked: true}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.Text(0, 0, "stub", core.ColorDefault)
}

func (g *stubGame) State() core.GameState {
	st := core.GameState{Score: g.score, GameOver: g.over, Won: g.over, Status: "playing"}
	if g.over {
		st.Status = "won"
		st.Ticks = 42
		st.GhostsEaten = 3
		st.PelletsEaten = 5
	}
	return st
}

func (g *stubGame) Stop() { g.stopped = true }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInitStartsFrames(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a frame")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.lastCfg.Seed != 7 {
		t.Errorf("seed = %d, want the fixed seed 7", g.lastCfg.Seed)
	}

	m, cmd := update(t, m, FrameMsg{Gen: m.Gen()})
	if cmd == nil {
		t.Error("a current frame should schedule the next one")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}

func TestModelDropsStaleFrames(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()
	old := m.Gen()

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start a new frame loop")
	}
	if m.Gen() == old {
		t.Fatal("restart should bump the generation")
	}
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}

	m, cmd = update(t, m, FrameMsg{Gen: old})
	if cmd != nil || g.steps != 0 {
		t.Errorf("stale frame was processed: cmd=%v steps=%d", cmd != nil, g.steps)
	}

	_, cmd = update(t, m, FrameMsg{Gen: m.Gen()})
	if cmd == nil || g.steps != 1 {
		t.Errorf("current frame not processed: cmd=%v steps=%d", cmd != nil, g.steps)
	}
}

func TestModelQuitStopsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()
	gen := m.Gen()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}
	if !g.stopped {
		t.Error("quitting should stop the game loop")
	}

	_, cmd = update(t, m, FrameMsg{Gen: gen})
	if cmd != nil || g.steps != 0 {
		t.Error("frames after teardown should be dropped")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewModel(g, store, testRuntime(), nil)
	m.Init()

	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})
	if m.LastRunID() != "" {
		t.Fatal("run recorded before it finished")
	}

	g.over, g.score = true, 150
	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})
	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.RunID != m.LastRunID() {
		t.Errorf("run id = %q, want %q", r.RunID, m.LastRunID())
	}
	if r.Score != 150 || r.Status != "won" || r.GhostsEaten != 3 || r.PelletsEaten != 5 || r.Ticks != 42 || r.Seed != 7 {
		t.Errorf("unexpected run record: %+v", r)
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 150 {
		t.Errorf("scores = %+v, want one entry of 150", scores)
	}

	// A restart begins a new run that is recorded separately.
	first := m.LastRunID()
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})
	if m.LastRunID() == first {
		t.Error("restarted run should get a new id")
	}
	runs, _ = store.RecentRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("got %d runs after restart, want 2", len(runs))
	}
}

func TestModelResize(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()
	gen := m.Gen()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if cmd == nil || m.Gen() == gen {
		t.Fatal("resize during play should restart the run")
	}
	if g.lastCfg.ScreenW != 60 || g.lastCfg.ScreenH != 30 {
		t.Errorf("reset with %dx%d, want 60x30", g.lastCfg.ScreenW, g.lastCfg.ScreenH)
	}

	g.over = true
	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})
	gen = m.Gen()
	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || m.Gen() != gen {
		t.Error("resize after the run ended should keep the final board")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), nil)
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("standalone model has no menu to return to")
	}

	m.embedded = true
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play should be ignored")
	}

	g.over = true
	m, _ = update(t, m, FrameMsg{Gen: m.Gen()})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || !g.stopped {
		t.Error("back after the run should return to the menu and stop the game")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime(), nil)
	m.Init()
	if got := ansiSeq.ReplaceAllString(m.View(), ""); !strings.HasPrefix(got, "stub") {
		t.Errorf("View = %q, want it to start with stub", got)
	}
}
