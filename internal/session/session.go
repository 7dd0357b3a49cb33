// Package session runs the tick-based state machine of a single game:
// player movement, pellet scoring, ghost lifecycle and the win transition.
//
// The ruleset is "eat the ghosts": touching a ghost scores it. GameOver is
// part of the Status enum for hosts but no rule reaches it.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/ghost"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// Generator produces a fresh maze for every (re)start.
type Generator func() maze.Layout

// Session owns the mutable side of a game. Callers only ever see the
// immutable snapshots it publishes.
type Session struct {
	gen    Generator
	opts   Options
	logger *log.Logger
	rng    *rand.Rand
	brain  *ghost.Brain
	state  *State
}

// New creates a session and generates its first maze. A nil logger
// discards output.
func New(gen Generator, opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		gen:    gen,
		opts:   opts,
		logger: logger,
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
	s.reset()
	return s
}

// Snapshot returns the current state.
func (s *Session) Snapshot() *State {
	return s.state
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// SubmitDirection queues a turn for the player. It is accepted only while
// idle or playing; the first accepted direction starts the game.
func (s *Session) SubmitDirection(dir engine.Direction) bool {
	if dir == engine.None || (s.state.Status != Idle && s.state.Status != Playing) {
		return false
	}
	next := s.state.clone()
	next.Player.NextDir = dir
	next.Status = Playing
	s.state = next
	return true
}

// Restart discards the current game and starts over on a new maze.
func (s *Session) Restart() {
	s.logger.Debug("restart", "score", s.state.Score, "status", s.state.Status)
	s.reset()
}

func (s *Session) reset() {
	layout := s.gen()
	s.brain = ghost.NewBrain(s.rng, s.opts.PaceEvery)

	st := &State{
		Grid:        layout.Grid,
		Spawns:      layout.Spawns,
		TextArea:    layout.TextArea,
		Status:      Idle,
		PelletsLeft: layout.Grid.Count(maze.Pellet),
	}
	st.Player = s.spawnPlayer(st)
	st.Agents = s.spawnAgents(st)
	s.state = st
}

func (s *Session) spawnPlayer(st *State) engine.Entity {
	w, h := s.opts.PlayerSize()
	g := st.Grid
	from := maze.Pos{X: (g.Cols() - w) / 2, Y: st.TextArea.Bottom()}
	if st.TextArea.Empty() {
		from.Y = g.Rows() / 2
	}
	pos := maze.FindOpen(g, from, w, h, func(p maze.Pos) bool {
		return coversSpawn(core.NewRect(p.X, p.Y, w, h), st.Spawns)
	})
	return engine.Entity{Pos: pos, Width: w, Height: h, Color: core.ColorBrightYellow}
}

func (s *Session) spawnAgents(st *State) []ghost.Agent {
	agents := make([]ghost.Agent, max(0, s.opts.PoolSize))
	for i := range agents {
		p := s.opts.profile(i)
		from := maze.Pos{X: 1, Y: 1}
		if len(st.Spawns) > 0 {
			from = st.Spawns[i%len(st.Spawns)]
		}
		agents[i] = ghost.Agent{
			Entity: engine.Entity{
				ID:     i + 1,
				Pos:    maze.FindOpen(st.Grid, from, 1, 1, nil),
				Width:  1,
				Height: 1,
				Color:  p.Color,
			},
			Name:     p.Name,
			Behavior: p.Behavior,
			Active:   i < s.opts.InitialActive,
		}
	}
	return agents
}

func coversSpawn(r core.Rect, spawns []maze.Pos) bool {
	for _, sp := range spawns {
		if r.Contains(sp.X, sp.Y) {
			return true
		}
	}
	return false
}

// Tick resolves one simulation step and publishes the resulting snapshot.
// Idle and terminal sessions do not change.
func (s *Session) Tick(now time.Time) *State {
	if s.state.Status != Playing {
		return s.state
	}

	next := s.state.clone()
	next.Tick++

	next.Player = engine.Advance(next.Player, next.Grid)
	grid, eaten := next.Grid.ConsumePellets(next.Player.Rect())
	next.Grid = grid
	next.PelletsLeft -= eaten
	next.PelletsEaten += eaten
	next.Score += eaten * s.opts.PelletReward

	s.resolveCollisions(next, now)
	s.moveAgents(next)
	s.resolveCollisions(next, now)
	s.activatePending(next)
	s.checkWin(next, now)

	if next.Message != "" && !now.Before(next.MessageExpires) {
		next.Message = ""
	}

	s.state = next
	return next
}

func (s *Session) moveAgents(st *State) {
	if !s.brain.BeginTick() {
		return
	}
	for i := range st.Agents {
		a := &st.Agents[i]
		if !a.Active {
			continue
		}
		dir, ok := s.brain.Choose(*a, st.Grid, st.Player.Pos)
		if !ok {
			continue
		}
		a.NextDir = dir
		a.Entity = engine.Advance(a.Entity, st.Grid)
	}
}

func (s *Session) resolveCollisions(st *State, now time.Time) {
	for i := range st.Agents {
		a := &st.Agents[i]
		if !a.Active || a.Eaten || !engine.Overlaps(st.Player, a.Entity) {
			continue
		}
		a.Active = false
		a.Eaten = true
		st.GhostsEaten++
		st.Score += s.opts.GhostReward
		st.Message = fmt.Sprintf("Ate %s!", a.Name)
		st.MessageExpires = now.Add(s.opts.MessageDuration)
		s.brain.Forget(a.ID)
		s.logger.Debug("ghost eaten", "name", a.Name, "behavior", a.Behavior, "score", st.Score)
	}
}

// activatePending brings at most one waiting ghost onto the board, at the
// spawn farthest from the player.
func (s *Session) activatePending(st *State) {
	if st.ActiveAgents() >= s.opts.InitialActive {
		return
	}
	for i := range st.Agents {
		a := &st.Agents[i]
		if !a.Pending() {
			continue
		}
		from := s.farthestSpawn(st)
		player := st.Player.Rect()
		a.Pos = maze.FindOpen(st.Grid, from, a.Width, a.Height, func(p maze.Pos) bool {
			return core.NewRect(p.X, p.Y, a.Width, a.Height).Intersects(player)
		})
		a.Dir = engine.None
		a.NextDir = engine.None
		a.Active = true
		s.brain.Forget(a.ID)
		s.logger.Debug("ghost activated", "name", a.Name, "x", a.Pos.X, "y", a.Pos.Y)
		return
	}
}

func (s *Session) farthestSpawn(st *State) maze.Pos {
	if len(st.Spawns) == 0 {
		return maze.Pos{X: 1, Y: 1}
	}
	p := st.Player.Pos
	best := st.Spawns[0]
	bestDist := -1
	for _, sp := range st.Spawns {
		if d := core.DistSq(sp.X, sp.Y, p.X, p.Y); d > bestDist {
			best, bestDist = sp, d
		}
	}
	return best
}

// checkWin schedules the win once the pool is empty and applies it when
// the grace period has passed.
func (s *Session) checkWin(st *State, now time.Time) {
	if !st.winPending && st.AllEaten() {
		st.winPending = true
		st.winAt = now.Add(s.opts.WinDelay)
	}
	if !st.winPending || now.Before(st.winAt) {
		return
	}
	st.Status = Won
	s.logger.Info("session won", "score", st.Score, "ticks", st.Tick)
}
