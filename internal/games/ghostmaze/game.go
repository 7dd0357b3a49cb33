// Package ghostmaze adapts a maze session to the registry.Game interface:
// host frames drive a virtual clock, input actions become direction
// intents, and snapshots are drawn into a core.Screen.
package ghostmaze

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/registry"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

const (
	cellWidth = 2 // terminal columns per maze cell
	hudHeight = 2 // status line + separator
	footerH   = 1
)

// epoch anchors the virtual clock so runs do not depend on wall time.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Package-level settings applied by the CLI before games are created.
var (
	mazeConfig = config.DefaultMazeConfig()
	logger     *log.Logger
)

// SetConfig sets the configuration used by subsequently reset games.
func SetConfig(cfg config.MazeConfig) {
	mazeConfig = cfg
}

// SetLogger sets the logger handed to new sessions. Nil discards.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game for one difficulty preset.
type Game struct {
	preset config.DifficultyPreset
	cfg    config.MazeConfig

	sess  *session.Session
	loop  *session.Loop
	clock time.Time
	frame time.Duration

	paused   bool
	tooSmall bool

	screenW, screenH int
	offsetX, offsetY int
}

// New creates a game for the given preset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// VariantID is the registry ID of a preset: "ghostmaze" for normal,
// "ghostmaze_<preset>" otherwise.
func VariantID(preset config.DifficultyPreset) string {
	if preset == config.DifficultyNormal {
		return "ghostmaze"
	}
	return "ghostmaze_" + string(preset)
}

func init() {
	for _, p := range []config.DifficultyPreset{config.DifficultyNormal, config.DifficultyEasy, config.DifficultyHard} {
		registry.Register(VariantID(p), func() registry.Game { return New(p) })
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return VariantID(g.preset) }

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Ghost Maze (Easy)"
	case config.DifficultyHard:
		return "Ghost Maze (Hard)"
	default:
		return "Ghost Maze"
	}
}

// Description summarizes the preset for menus.
func (g *Game) Description() string {
	v := g.preset.Values()
	return fmt.Sprintf("Eat every ghost; %d on the board at once", v.InitialActive)
}

// Reset starts a new run sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = mazeConfig
	config.ApplyPreset(&g.cfg, g.preset)

	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.paused = false

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)

	cols := cfg.ScreenW / cellWidth
	rows := cfg.ScreenH - hudHeight - footerH
	sizing := g.cfg.Sizing()
	if sizing.OddRows && rows%2 == 0 {
		rows--
	}
	if cols < sizing.MinCols || rows < sizing.MinRows {
		g.tooSmall = true
		g.sess, g.loop = nil, nil
		return
	}
	g.tooSmall = false

	g.sess = session.New(g.cfg.CellGenerator(cols, rows), g.cfg.Options(cfg.Seed), logger)
	g.loop = session.NewLoop(g.sess)
	g.clock = epoch
	g.loop.Reset(g.clock)
	g.layout()
}

// layout centers the current maze below the HUD.
func (g *Game) layout() {
	grid := g.sess.Snapshot().Grid
	g.offsetX = max(0, (g.screenW-grid.Cols()*cellWidth)/2)
	g.offsetY = hudHeight
}

// Step advances one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.sess.Restart()
		g.loop.Reset(g.clock)
		g.paused = false
		g.layout()
		return core.StepResult{State: g.State()}
	}

	status := g.sess.Snapshot().Status
	if in.Has(core.ActionPause) && status == session.Playing {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if dir := directionFor(in); dir != engine.None {
		g.sess.SubmitDirection(dir)
	}

	g.clock = g.clock.Add(g.frame)
	_, ticked := g.loop.Frame(g.clock)
	return core.StepResult{State: g.State(), Ticked: ticked}
}

// directionFor maps the first pressed direction to a heading.
func directionFor(in core.InputFrame) engine.Direction {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up
	case in.Has(core.ActionDown):
		return engine.Down
	case in.Has(core.ActionLeft):
		return engine.Left
	case in.Has(core.ActionRight):
		return engine.Right
	default:
		return engine.None
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{Paused: g.paused}
	}
	st := g.sess.Snapshot()
	return core.GameState{
		Score:        st.Score,
		GameOver:     st.Status.Terminal(),
		Won:          st.Status == session.Won,
		Paused:       g.paused,
		Status:       st.Status.String(),
		Ticks:        st.Tick,
		GhostsEaten:  st.GhostsEaten,
		PelletsEaten: st.PelletsEaten,
	}
}

// Session exposes the running session, nil when the screen is too small.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Stop cancels the frame loop. Frames stepped afterwards do not tick.
func (g *Game) Stop() {
	if g.loop != nil {
		g.loop.Stop()
	}
}
