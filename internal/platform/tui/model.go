package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/registry"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

// stopper is implemented by games whose frame loop can be cancelled.
type stopper interface {
	Stop()
}

// runInfo tracks the run currently on screen.
type runInfo struct {
	id      string
	seed    int64
	started time.Time
	saved   bool
}

func newRun(seed int64) runInfo {
	return runInfo{id: storage.NewRunID(), seed: seed, started: time.Now()}
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	input core.InputFrame
	state core.GameState

	// gen numbers the frame loop; frames carrying another value are stale.
	gen       uint64
	fixedSeed bool
	run       runInfo
	lastRunID string

	embedded   bool // hosted inside SessionModel; b/esc returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. A zero seed picks one per run.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		fixedSeed: fixed,
		run:       newRun(cfg.Seed),
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.gen, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case FrameMsg:
		return m.handleFrame(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.teardown()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.input.Has(core.ActionRestart):
		m.input.Clear()
		return m.restart()
	case m.input.Has(core.ActionBack) && m.embedded && (m.state.GameOver || m.state.Paused):
		m.teardown()
		m.backToMenu = true
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A finished run keeps its final board on screen.
	if m.state.GameOver {
		return m, nil
	}
	return m.restart()
}

// restart begins a new run and a new frame loop.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen++
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.run = newRun(m.config.Seed)
	return m, frameCmd(m.gen, m.config.TickRate)
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if m.state.GameOver && !m.run.saved {
		m.run.saved = true
		m.recordRun()
	}
	return m, frameCmd(m.gen, m.config.TickRate)
}

// recordRun stores the finished run. Failures are logged, play goes on.
func (m *Model) recordRun() {
	m.lastRunID = m.run.id
	if m.store == nil {
		return
	}

	gameID := m.game.ID()
	if m.state.Score > 0 {
		if _, err := m.store.SaveScore(gameID, m.state.Score); err != nil {
			m.logger.Warn("could not save score", "game", gameID, "error", err)
		}
	}

	_, err := m.store.SaveRun(storage.Run{
		RunID:        m.run.id,
		GameID:       gameID,
		Score:        m.state.Score,
		Status:       m.state.Status,
		GhostsEaten:  m.state.GhostsEaten,
		PelletsEaten: m.state.PelletsEaten,
		Ticks:        m.state.Ticks,
		Seed:         m.run.seed,
		Duration:     time.Since(m.run.started),
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", gameID, "run", m.run.id, "error", err)
		return
	}
	m.logger.Info("run recorded", "game", gameID, "run", m.run.id, "score", m.state.Score)
}

// teardown invalidates pending frames and stops the game's loop.
func (m *Model) teardown() {
	m.gen++
	if s, ok := m.game.(stopper); ok {
		s.Stop()
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Gen returns the current frame loop generation.
func (m Model) Gen() uint64 {
	return m.gen
}

// LastRunID returns the ID of the most recently finished run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// IsQuitting reports whether the user asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, store, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	if s, ok := game.(stopper); ok {
		s.Stop()
	}
	return err
}
