package session

import (
	"time"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/ghost"
)

// Profile describes one ghost slot: who it is and how it moves.
type Profile struct {
	Name     string
	Behavior ghost.Behavior
	Color    core.Color
}

// Options tunes a session.
type Options struct {
	PelletReward int
	GhostReward  int

	PoolSize      int       // ghost slots created at start
	InitialActive int       // ghosts on the board at once
	Roster        []Profile // cycled when shorter than PoolSize

	PlayerHeight int
	PlayerAspect float64 // width = floor(height * aspect)

	PaceEvery       int // ghosts skip every n-th tick
	TickDuration    time.Duration
	WinDelay        time.Duration
	MessageDuration time.Duration

	Seed int64
}

// DefaultRoster is one ghost per behavior.
func DefaultRoster() []Profile {
	return []Profile{
		{Name: "Wisp", Behavior: ghost.Wanderer, Color: core.ColorRed},
		{Name: "Glide", Behavior: ghost.HorizontalPatrol, Color: core.ColorPink},
		{Name: "Lift", Behavior: ghost.VerticalPatrol, Color: core.ColorBrightCyan},
		{Name: "Flicker", Behavior: ghost.Erratic, Color: core.ColorOrange},
		{Name: "Nook", Behavior: ghost.CornerHugger, Color: core.ColorGreen},
		{Name: "Mope", Behavior: ghost.SlowMover, Color: core.ColorBlue},
		{Name: "Zag", Behavior: ghost.Zigzag, Color: core.ColorMagenta},
		{Name: "Warden", Behavior: ghost.DistanceKeeper, Color: core.ColorWhite},
	}
}

// DefaultOptions returns the standard ruleset.
func DefaultOptions() Options {
	return Options{
		PelletReward:    10,
		GhostReward:     200,
		PoolSize:        8,
		InitialActive:   3,
		Roster:          DefaultRoster(),
		PlayerHeight:    1,
		PlayerAspect:    1.0,
		PaceEvery:       ghost.DefaultPaceEvery,
		TickDuration:    180 * time.Millisecond,
		WinDelay:        time.Second,
		MessageDuration: 2 * time.Second,
	}
}

// PlayerSize returns the player footprint for these options.
func (o Options) PlayerSize() (w, h int) {
	h = max(1, o.PlayerHeight)
	w = max(1, int(float64(h)*o.PlayerAspect))
	return w, h
}

func (o Options) profile(i int) Profile {
	if len(o.Roster) == 0 {
		roster := DefaultRoster()
		return roster[i%len(roster)]
	}
	return o.Roster[i%len(o.Roster)]
}
