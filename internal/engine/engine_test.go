package engine

import (
	"testing"

	"github.com/vovakirdan/ghostmaze/internal/maze"
)

func openGrid(cols, rows int) *maze.Grid {
	return maze.NewBordered(cols, rows, maze.Empty)
}

func tunnelGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, _, err := maze.Parse([]string{
		"##########",
		"..........",
		"..........",
		"##########",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestAdvanceOpenStep(t *testing.T) {
	g := openGrid(20, 10)
	p := Entity{Pos: maze.Pos{X: 1, Y: 1}, NextDir: Right, Width: 2, Height: 2}

	got := Advance(p, g)
	if got.Pos != (maze.Pos{X: 2, Y: 1}) {
		t.Errorf("Pos = %v, want (2,1)", got.Pos)
	}
	if got.Dir != Right {
		t.Errorf("Dir = %v, want right", got.Dir)
	}
	if got.NextDir != None {
		t.Errorf("NextDir = %v, want none after the turn is taken", got.NextDir)
	}
}

func TestAdvanceWrapsRight(t *testing.T) {
	g := tunnelGrid(t)
	w := 2
	p := Entity{Pos: maze.Pos{X: g.Cols() - w, Y: 1}, Dir: Right, Width: w, Height: 2}

	got := Advance(p, g)
	if got.Pos.X != 0 {
		t.Errorf("X = %d, want 0 after wrapping", got.Pos.X)
	}
}

func TestAdvanceWrapsLeft(t *testing.T) {
	g := tunnelGrid(t)
	p := Entity{Pos: maze.Pos{X: 0, Y: 1}, Dir: Left, Width: 2, Height: 1}

	got := Advance(p, g)
	if want := g.Cols() - 2; got.Pos.X != want {
		t.Errorf("X = %d, want %d after wrapping", got.Pos.X, want)
	}
}

func TestAdvanceFacingWall(t *testing.T) {
	g := openGrid(10, 10)
	p := Entity{Pos: maze.Pos{X: 8, Y: 4}, Dir: Up, NextDir: Right, Width: 1, Height: 1}

	// Right is blocked by the border: the turn stays queued and Up continues.
	got := Advance(p, g)
	if got.Pos != (maze.Pos{X: 8, Y: 3}) {
		t.Errorf("Pos = %v, want (8,3)", got.Pos)
	}
	if got.Dir != Up || got.NextDir != Right {
		t.Errorf("Dir/NextDir = %v/%v, want up/right", got.Dir, got.NextDir)
	}

	blocked := Entity{Pos: maze.Pos{X: 8, Y: 1}, Dir: Right, Width: 1, Height: 1}
	got = Advance(blocked, g)
	if got.Pos != blocked.Pos {
		t.Errorf("blocked entity moved to %v", got.Pos)
	}
	if got.Dir != Right {
		t.Errorf("blocked entity Dir = %v, want right", got.Dir)
	}
}

func TestAdvanceStandingStill(t *testing.T) {
	g := openGrid(10, 10)
	p := Entity{Pos: maze.Pos{X: 3, Y: 3}, Width: 1, Height: 1}
	if got := Advance(p, g); got != p {
		t.Errorf("idle entity changed: %+v", got)
	}
}

func TestIsValidMove(t *testing.T) {
	g := openGrid(20, 10)
	tests := []struct {
		name string
		pos  maze.Pos
		w, h int
		want bool
	}{
		{"interior", maze.Pos{X: 1, Y: 1}, 2, 2, true},
		{"on border", maze.Pos{X: 0, Y: 1}, 1, 1, false},
		{"out of range", maze.Pos{X: 19, Y: 1}, 2, 1, false},
		{"negative", maze.Pos{X: -1, Y: -1}, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidMove(g, tt.pos, tt.w, tt.h); got != tt.want {
				t.Errorf("IsValidMove(%v, %dx%d) = %v, want %v", tt.pos, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d        Direction
		opposite Direction
		dx, dy   int
	}{
		{Up, Down, 0, -1},
		{Down, Up, 0, 1},
		{Left, Right, -1, 0},
		{Right, Left, 1, 0},
		{None, None, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, got, tt.opposite)
		}
		dx, dy := tt.d.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.d, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestOverlaps(t *testing.T) {
	player := Entity{Pos: maze.Pos{X: 5, Y: 5}, Width: 2, Height: 2}
	tests := []struct {
		name string
		pos  maze.Pos
		want bool
	}{
		{"same origin", maze.Pos{X: 5, Y: 5}, true},
		{"inside", maze.Pos{X: 6, Y: 6}, true},
		{"adjacent right", maze.Pos{X: 7, Y: 5}, false},
		{"adjacent below", maze.Pos{X: 5, Y: 7}, false},
	}
	for _, tt := range tests {
		ghost := Entity{Pos: tt.pos, Width: 1, Height: 1}
		if got := Overlaps(player, ghost); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}
