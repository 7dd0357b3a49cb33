package session

import (
	"time"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/ghost"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// Status is the session lifecycle stage.
type Status int

const (
	Idle     Status = iota // waiting for the first direction
	Playing                // ticking
	Won                    // every ghost eaten
	GameOver               // reserved for the collision-is-fatal ruleset
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == Won || s == GameOver
}

// State is a snapshot of a session. A published State is never modified;
// every tick publishes a new one.
type State struct {
	Grid     *maze.Grid
	Spawns   []maze.Pos
	TextArea core.Rect

	Player engine.Entity
	Agents []ghost.Agent

	Score  int
	Status Status

	Message        string
	MessageExpires time.Time

	Tick         uint64
	PelletsLeft  int
	PelletsEaten int
	GhostsEaten  int

	winPending bool
	winAt      time.Time
}

// clone copies the snapshot so the next tick can build on it. The grid
// and spawn list are shared: the grid is replaced rather than written.
func (s *State) clone() *State {
	next := *s
	next.Agents = make([]ghost.Agent, len(s.Agents))
	copy(next.Agents, s.Agents)
	return &next
}

// MessageAt returns the feedback message if it is still showing at now.
func (s *State) MessageAt(now time.Time) string {
	if s.Message == "" || !now.Before(s.MessageExpires) {
		return ""
	}
	return s.Message
}

// ActiveAgents counts ghosts currently on the board.
func (s *State) ActiveAgents() int {
	n := 0
	for _, a := range s.Agents {
		if a.Active {
			n++
		}
	}
	return n
}

// AllEaten reports whether the whole pool has been eaten.
func (s *State) AllEaten() bool {
	if len(s.Agents) == 0 {
		return false
	}
	for _, a := range s.Agents {
		if !a.Eaten {
			return false
		}
	}
	return true
}
