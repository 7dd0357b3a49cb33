package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/ghost"
	"github.com/vovakirdan/ghostmaze/internal/maze"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks value ranges and roster names.
func (c MazeConfig) Validate() error {
	switch {
	case c.Timing.TickMS <= 0:
		return invalid("timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	case c.Timing.WinDelayMS < 0:
		return invalid("timing.win_delay_ms must not be negative, got %d", c.Timing.WinDelayMS)
	case c.Timing.MessageMS < 0:
		return invalid("timing.message_ms must not be negative, got %d", c.Timing.MessageMS)
	case c.Scoring.Pellet < 0 || c.Scoring.Ghost < 0:
		return invalid("scoring rewards must not be negative")
	case c.Player.Height < 1:
		return invalid("player.height must be at least 1, got %d", c.Player.Height)
	case c.Player.AspectRatio <= 0:
		return invalid("player.aspect_ratio must be positive, got %v", c.Player.AspectRatio)
	case c.Ghosts.PoolSize < 1:
		return invalid("ghosts.pool_size must be at least 1, got %d", c.Ghosts.PoolSize)
	case c.Ghosts.InitialActive < 1 || c.Ghosts.InitialActive > c.Ghosts.PoolSize:
		return invalid("ghosts.initial_active must be in [1, %d], got %d", c.Ghosts.PoolSize, c.Ghosts.InitialActive)
	case c.Ghosts.PaceEvery < 0 || c.Ghosts.PaceEvery == 1:
		return invalid("ghosts.pace_every must be 0 or at least 2, got %d", c.Ghosts.PaceEvery)
	}

	for i, g := range c.Ghosts.Roster {
		if _, ok := ghost.ParseBehavior(g.Behavior); !ok {
			return invalid("ghosts.roster[%d]: unknown behavior %q", i, g.Behavior)
		}
		if g.Color != "" {
			if _, ok := core.ParseColor(g.Color); !ok {
				return invalid("ghosts.roster[%d]: unknown color %q", i, g.Color)
			}
		}
	}

	m := c.Maze
	switch {
	case m.MinCell <= 0 || m.MaxCell < m.MinCell || m.CellStep <= 0:
		return invalid("maze cell range [%v, %v] step %v", m.MinCell, m.MaxCell, m.CellStep)
	case m.IdealCell <= 0:
		return invalid("maze.ideal_cell must be positive, got %v", m.IdealCell)
	case m.MinCols < 12 || m.MaxCols < m.MinCols:
		return invalid("maze cols range [%d, %d] (minimum 12)", m.MinCols, m.MaxCols)
	case m.MinRows < 15 || m.MaxRows < m.MinRows:
		return invalid("maze rows range [%d, %d] (minimum 15)", m.MinRows, m.MaxRows)
	case m.OddRows && m.MinRows%2 == 0:
		return invalid("maze.min_rows must be odd when odd_rows is set, got %d", m.MinRows)
	}
	for i, o := range m.Obstacles {
		if _, ok := maze.ParseShape(o.Shape); !ok {
			return invalid("maze.obstacles[%d]: unknown shape %q", i, o.Shape)
		}
		if o.X < 0 || o.X > 1 || o.Y < 0 || o.Y > 1 {
			return invalid("maze.obstacles[%d]: position (%v, %v) outside [0, 1]", i, o.X, o.Y)
		}
	}
	return nil
}

// Options converts the config into session options. Call Validate first;
// unknown names fall back to defaults here.
func (c MazeConfig) Options(seed int64) session.Options {
	opts := session.Options{
		PelletReward:    c.Scoring.Pellet,
		GhostReward:     c.Scoring.Ghost,
		PoolSize:        c.Ghosts.PoolSize,
		InitialActive:   c.Ghosts.InitialActive,
		PlayerHeight:    c.Player.Height,
		PlayerAspect:    c.Player.AspectRatio,
		PaceEvery:       c.Ghosts.PaceEvery,
		TickDuration:    time.Duration(c.Timing.TickMS) * time.Millisecond,
		WinDelay:        time.Duration(c.Timing.WinDelayMS) * time.Millisecond,
		MessageDuration: time.Duration(c.Timing.MessageMS) * time.Millisecond,
		Seed:            seed,
	}

	defaults := session.DefaultRoster()
	for i, g := range c.Ghosts.Roster {
		p := defaults[i%len(defaults)]
		if b, ok := ghost.ParseBehavior(g.Behavior); ok {
			p.Behavior = b
		}
		if col, ok := core.ParseColor(g.Color); ok {
			p.Color = col
		}
		if g.Name != "" {
			p.Name = g.Name
		}
		opts.Roster = append(opts.Roster, p)
	}
	return opts
}

// Sizing converts the maze section into generator sizing bounds.
func (c MazeConfig) Sizing() maze.SizingOptions {
	opts := maze.DefaultSizing()
	m := c.Maze
	opts.MinCell, opts.MaxCell, opts.CellStep = m.MinCell, m.MaxCell, m.CellStep
	opts.IdealCell = m.IdealCell
	opts.MinCols, opts.MaxCols = m.MinCols, m.MaxCols
	opts.MinRows, opts.MaxRows = m.MinRows, m.MaxRows
	opts.OddRows = m.OddRows
	return opts
}

// Blueprint returns the obstacle and spawn table, replacing the obstacles
// when the config lists its own.
func (c MazeConfig) Blueprint() maze.Blueprint {
	bp := maze.DefaultBlueprint()
	if len(c.Maze.Obstacles) == 0 {
		return bp
	}
	bp.Obstacles = bp.Obstacles[:0:0]
	for _, o := range c.Maze.Obstacles {
		shape, ok := maze.ParseShape(o.Shape)
		if !ok {
			continue
		}
		bp.Obstacles = append(bp.Obstacles, maze.Obstacle{At: maze.Point{X: o.X, Y: o.Y}, Shape: shape})
	}
	return bp
}

// CellGenerator returns a session generator that sizes the maze in cells.
// Non-positive sizes produce the fallback maze.
func (c MazeConfig) CellGenerator(cols, rows int) session.Generator {
	sizing, bp := c.Sizing(), c.Blueprint()
	return func() maze.Layout {
		if cols <= 0 || rows <= 0 {
			return maze.Fallback()
		}
		return maze.Generate(maze.FitCells(cols, rows, sizing), bp)
	}
}

// ScreenGenerator returns a session generator for a pixel viewport.
func (c MazeConfig) ScreenGenerator(width, height float64) session.Generator {
	sizing, bp := c.Sizing(), c.Blueprint()
	return func() maze.Layout {
		if width <= 0 || height <= 0 {
			return maze.Fallback()
		}
		return maze.Generate(maze.ChooseDimensions(width, height, sizing), bp)
	}
}
