package ghost

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// Policy tuning.
const (
	DefaultPaceEvery = 5

	wanderFleeChance   = 0.6
	wanderReverseProb  = 0.08
	patrolAxisChance   = 0.8
	keeperFleeDistSq   = 36
	keeperIdealDistSq  = 64
	cornerEdgeBase     = 100.0
	cornerDistWeight   = 0.1
	erraticMinInterval = 2
	erraticSpread      = 3 // intervals fall in [2, 4]
)

// Brain chooses directions for every ghost in a session. It owns the
// random source, the global pacing counter and the per-ghost counters.
type Brain struct {
	rng       *rand.Rand
	paceEvery int
	ticks     int
	counters  map[int]*Counters
}

// NewBrain creates a brain. Ghosts skip every paceEvery-th tick; zero or
// less disables global pacing.
func NewBrain(rng *rand.Rand, paceEvery int) *Brain {
	return &Brain{
		rng:       rng,
		paceEvery: paceEvery,
		counters:  make(map[int]*Counters),
	}
}

// BeginTick advances the global pacing counter and reports whether ghosts
// move this tick.
func (b *Brain) BeginTick() bool {
	b.ticks++
	if b.paceEvery <= 0 {
		return true
	}
	return b.ticks%b.paceEvery != 0
}

// Forget drops the counters of a ghost so it starts fresh when respawned.
func (b *Brain) Forget(id int) {
	delete(b.counters, id)
}

// Counters returns a copy of a ghost's counters.
func (b *Brain) Counters(id int) Counters {
	if c, ok := b.counters[id]; ok {
		return *c
	}
	return Counters{}
}

func (b *Brain) countersFor(id int) *Counters {
	c, ok := b.counters[id]
	if !ok {
		c = &Counters{}
		b.counters[id] = c
	}
	return c
}

// candidate is a legal direction and where it leads.
type candidate struct {
	dir engine.Direction
	pos maze.Pos
}

// view is what a policy sees when choosing.
type view struct {
	agent  Agent
	grid   *maze.Grid
	player maze.Pos
	cands  []candidate
	rng    *rand.Rand
}

// Choose picks a direction for an active ghost. It returns false when the
// ghost holds position this tick.
func (b *Brain) Choose(a Agent, g *maze.Grid, player maze.Pos) (engine.Direction, bool) {
	c := b.countersFor(a.ID)
	if a.Behavior == SlowMover {
		c.Slow++
		if c.Slow%2 == 0 {
			return engine.None, false
		}
	}

	v := view{
		agent:  a,
		grid:   g,
		player: player,
		cands:  b.candidates(a, g),
		rng:    b.rng,
	}
	if len(v.cands) == 0 {
		return engine.None, false
	}

	var dir engine.Direction
	switch a.Behavior {
	case Wanderer:
		dir = wander(v)
	case HorizontalPatrol:
		dir = patrol(v, engine.Direction.IsHorizontal, func(p maze.Pos) int { return core.Abs(p.X - player.X) })
	case VerticalPatrol:
		dir = patrol(v, engine.Direction.IsVertical, func(p maze.Pos) int { return core.Abs(p.Y - player.Y) })
	case Erratic:
		dir = erratic(v, c)
	case CornerHugger:
		dir = hugCorners(v)
	case SlowMover:
		dir = flee(v.cands, player)
	case Zigzag:
		dir = zigzag(v, c)
	case DistanceKeeper:
		dir = keepDistance(v)
	}

	if dir == engine.None {
		dir = v.cands[b.rng.Intn(len(v.cands))].dir
	}
	return dir, true
}

// candidates lists the open directions. Reversal is dropped unless it is
// the only way out; wanderers occasionally keep it anyway.
func (b *Brain) candidates(a Agent, g *maze.Grid) []candidate {
	var open []candidate
	var back *candidate
	reverse := a.Dir.Opposite()

	for _, d := range engine.Cardinals {
		pos := engine.Target(g, a.Pos, a.Width, a.Height, d)
		if !engine.IsValidMove(g, pos, a.Width, a.Height) {
			continue
		}
		if d == reverse {
			back = &candidate{dir: d, pos: pos}
			continue
		}
		open = append(open, candidate{dir: d, pos: pos})
	}

	if back == nil {
		return open
	}
	if len(open) == 0 || (a.Behavior == Wanderer && b.rng.Float64() < wanderReverseProb) {
		return append(open, *back)
	}
	return open
}

func distSq(a, b maze.Pos) int {
	return core.DistSq(a.X, a.Y, b.X, b.Y)
}

// argmax returns the first candidate with the highest score.
func argmax(cands []candidate, score func(candidate) float64) engine.Direction {
	best := engine.None
	bestScore := math.Inf(-1)
	for _, c := range cands {
		if s := score(c); s > bestScore {
			best, bestScore = c.dir, s
		}
	}
	return best
}

func flee(cands []candidate, player maze.Pos) engine.Direction {
	return argmax(cands, func(c candidate) float64 {
		return float64(distSq(c.pos, player))
	})
}

func random(v view) engine.Direction {
	return v.cands[v.rng.Intn(len(v.cands))].dir
}

func wander(v view) engine.Direction {
	if v.rng.Float64() < wanderFleeChance {
		return flee(v.cands, v.player)
	}
	return random(v)
}

func onAxis(cands []candidate, axis func(engine.Direction) bool) []candidate {
	var out []candidate
	for _, c := range cands {
		if axis(c.dir) {
			out = append(out, c)
		}
	}
	return out
}

func patrol(v view, axis func(engine.Direction) bool, dist func(maze.Pos) int) engine.Direction {
	if v.rng.Float64() < patrolAxisChance {
		if along := onAxis(v.cands, axis); len(along) > 0 {
			return argmax(along, func(c candidate) float64 { return float64(dist(c.pos)) })
		}
	}
	return flee(v.cands, v.player)
}

func erratic(v view, c *Counters) engine.Direction {
	c.ErraticLeft--
	if c.ErraticLeft > 0 {
		for _, cand := range v.cands {
			if cand.dir == v.agent.Dir {
				return cand.dir
			}
		}
		return engine.None
	}

	c.ErraticLeft = erraticMinInterval + v.rng.Intn(erraticSpread)
	var turns []candidate
	for _, cand := range v.cands {
		if cand.dir != v.agent.Dir {
			turns = append(turns, cand)
		}
	}
	if len(turns) == 0 {
		return engine.None
	}
	return turns[v.rng.Intn(len(turns))].dir
}

func edgeDistance(g *maze.Grid, p maze.Pos) int {
	return min(p.X, p.Y, g.Cols()-1-p.X, g.Rows()-1-p.Y)
}

func hugCorners(v view) engine.Direction {
	return argmax(v.cands, func(c candidate) float64 {
		edge := cornerEdgeBase - float64(edgeDistance(v.grid, c.pos))
		return edge + cornerDistWeight*float64(distSq(c.pos, v.player))
	})
}

func zigzag(v view, c *Counters) engine.Direction {
	vertical := (c.Zigzag/2)%2 == 0
	c.Zigzag++

	if vertical {
		return argmax(onAxis(v.cands, engine.Direction.IsVertical), func(cand candidate) float64 {
			return float64(core.Abs(cand.pos.Y - v.player.Y))
		})
	}
	return argmax(onAxis(v.cands, engine.Direction.IsHorizontal), func(cand candidate) float64 {
		return float64(core.Abs(cand.pos.X - v.player.X))
	})
}

func keepDistance(v view) engine.Direction {
	if distSq(v.agent.Pos, v.player) <= keeperFleeDistSq {
		return flee(v.cands, v.player)
	}
	return argmax(v.cands, func(c candidate) float64 {
		return -math.Abs(float64(distSq(c.pos, v.player) - keeperIdealDistSq))
	})
}
