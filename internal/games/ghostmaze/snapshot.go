package ghostmaze

import (
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

// Snapshot captures the game state for determinism checks.
type Snapshot struct {
	Tick         uint64
	Score        int
	Status       session.Status
	PlayerX      int
	PlayerY      int
	Dir          engine.Direction
	GhostsActive int
	GhostsEaten  int
	PelletsEaten int
	PelletsLeft  int
	Cols, Rows   int
	Paused       bool
	TooSmall     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sess == nil {
		return Snapshot{TooSmall: g.tooSmall, Paused: g.paused}
	}
	st := g.sess.Snapshot()
	return Snapshot{
		Tick:         st.Tick,
		Score:        st.Score,
		Status:       st.Status,
		PlayerX:      st.Player.Pos.X,
		PlayerY:      st.Player.Pos.Y,
		Dir:          st.Player.Dir,
		GhostsActive: st.ActiveAgents(),
		GhostsEaten:  st.GhostsEaten,
		PelletsEaten: st.PelletsEaten,
		PelletsLeft:  st.PelletsLeft,
		Cols:         st.Grid.Cols(),
		Rows:         st.Grid.Rows(),
		Paused:       g.paused,
		TooSmall:     g.tooSmall,
	}
}
