// Package ghost implements the agent AI: eight fixed movement policies
// selected per ghost, global pacing and per-ghost counters.
package ghost

import (
	"github.com/vovakirdan/ghostmaze/internal/engine"
)

// Behavior selects a ghost's movement policy. It is fixed for the
// ghost's lifetime.
type Behavior int

const (
	Wanderer Behavior = iota
	HorizontalPatrol
	VerticalPatrol
	Erratic
	CornerHugger
	SlowMover
	Zigzag
	DistanceKeeper
)

var behaviorNames = [...]string{
	Wanderer:         "wanderer",
	HorizontalPatrol: "horizontal-patrol",
	VerticalPatrol:   "vertical-patrol",
	Erratic:          "erratic",
	CornerHugger:     "corner-hugger",
	SlowMover:        "slow-mover",
	Zigzag:           "zigzag",
	DistanceKeeper:   "distance-keeper",
}

// Behaviors returns all policies in roster order.
func Behaviors() []Behavior {
	out := make([]Behavior, len(behaviorNames))
	for i := range behaviorNames {
		out[i] = Behavior(i)
	}
	return out
}

func (b Behavior) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "unknown"
	}
	return behaviorNames[b]
}

// ParseBehavior converts a config name into a Behavior.
func ParseBehavior(name string) (Behavior, bool) {
	for i, n := range behaviorNames {
		if n == name {
			return Behavior(i), true
		}
	}
	return 0, false
}

// Agent is a ghost slot in the session pool.
type Agent struct {
	engine.Entity
	Name     string
	Behavior Behavior
	Active   bool // simulated and visible
	Eaten    bool // retired for the rest of the session
}

// Pending reports whether the agent is waiting for a free slot.
func (a Agent) Pending() bool {
	return !a.Active && !a.Eaten
}

// Counters is the per-ghost state some policies keep between ticks.
type Counters struct {
	Slow        int // eligible ticks seen by a slow mover
	Zigzag      int // ticks spent zigzagging
	ErraticLeft int // ticks until the next forced turn
}
