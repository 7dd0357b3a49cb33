// Package engine resolves movement intents against a maze grid.
//
// The same rules apply to the player and to every ghost; entities differ
// only by footprint size.
package engine

import (
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// Direction is a cardinal heading, or None when standing still.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Cardinals lists the four headings in tie-break order.
var Cardinals = [4]Direction{Up, Down, Left, Right}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool { return d == Left || d == Right }

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Entity is anything that moves through the maze.
type Entity struct {
	ID      int
	Pos     maze.Pos
	Dir     Direction
	NextDir Direction // queued turn
	Width   int
	Height  int
	Color   core.Color
}

// Rect returns the entity's footprint.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Width, e.Height)
}

// IsValidMove reports whether a w x h footprint may occupy pos.
func IsValidMove(g *maze.Grid, pos maze.Pos, w, h int) bool {
	return g.FootprintClear(pos.X, pos.Y, w, h)
}

// Target returns the position one step from pos in dir, wrapped onto the
// torus. A footprint pushed past the far edge reappears at 0 and one pushed
// below 0 reappears flush with the far edge.
func Target(g *maze.Grid, pos maze.Pos, w, h int, dir Direction) maze.Pos {
	dx, dy := dir.Delta()
	next := pos.Add(dx, dy)
	maxX, maxY := g.Cols()-w, g.Rows()-h

	switch {
	case next.X > maxX:
		next.X = 0
	case next.X < 0:
		next.X = maxX
	}
	switch {
	case next.Y > maxY:
		next.Y = 0
	case next.Y < 0:
		next.Y = maxY
	}
	return next
}

// Advance moves e one step. A queued turn is taken when the cell in that
// direction is open; otherwise the current heading is kept. A blocked
// entity stays in place but keeps facing its heading, so it moves as soon
// as the way opens.
func Advance(e Entity, g *maze.Grid) Entity {
	if e.NextDir != None {
		if IsValidMove(g, Target(g, e.Pos, e.Width, e.Height, e.NextDir), e.Width, e.Height) {
			e.Dir = e.NextDir
			e.NextDir = None
		}
	}
	if e.Dir == None {
		return e
	}

	next := Target(g, e.Pos, e.Width, e.Height, e.Dir)
	next.X = core.Clamp(next.X, 0, max(0, g.Cols()-e.Width))
	next.Y = core.Clamp(next.Y, 0, max(0, g.Rows()-e.Height))
	if IsValidMove(g, next, e.Width, e.Height) {
		e.Pos = next
	}
	return e
}

// Overlaps reports whether two footprints intersect.
func Overlaps(a, b Entity) bool {
	return a.Rect().Intersects(b.Rect())
}
