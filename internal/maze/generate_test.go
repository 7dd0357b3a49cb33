package maze

import "testing"

func generatedLayouts() map[string]Layout {
	return map[string]Layout{
		"min cells":    GenerateForCells(12, 15),
		"square cells": GenerateForCells(25, 25),
		"wide cells":   GenerateForCells(45, 21),
		"tall cells":   GenerateForCells(20, 55),
		"desktop":      GenerateForScreen(1280, 800),
		"phone":        GenerateForScreen(390, 760),
		"no hints":     GenerateForScreen(0, 0),
	}
}

func TestGeneratedBorderIsWall(t *testing.T) {
	for name, l := range generatedLayouts() {
		g := l.Grid
		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				onEdge := x == 0 || y == 0 || x == g.Cols()-1 || y == g.Rows()-1
				if onEdge && !g.IsWall(x, y) {
					t.Errorf("%s: border cell (%d,%d) is %v", name, x, y, g.At(x, y))
				}
			}
		}
	}
}

func TestGeneratedMazeIsConnected(t *testing.T) {
	for name, l := range generatedLayouts() {
		if !IsConnected(l.Grid) {
			t.Errorf("%s: maze has unreachable cells\n%s", name, l.Grid)
		}
	}
}

func TestGeneratedTextAreaAndSpawns(t *testing.T) {
	for name, l := range generatedLayouts() {
		g := l.Grid
		if l.TextArea.Empty() {
			t.Errorf("%s: empty text area", name)
		}
		for y := l.TextArea.Y; y < l.TextArea.Bottom(); y++ {
			for x := l.TextArea.X; x < l.TextArea.Right(); x++ {
				if g.IsWall(x, y) {
					t.Errorf("%s: wall inside text area at (%d,%d)", name, x, y)
				}
			}
		}

		if len(l.Spawns) == 0 {
			t.Errorf("%s: no spawns", name)
		}
		for _, s := range l.Spawns {
			if g.At(s.X, s.Y) != GhostSpawn {
				t.Errorf("%s: spawn %v holds %v", name, s, g.At(s.X, s.Y))
			}
			if l.TextArea.Contains(s.X, s.Y) {
				t.Errorf("%s: spawn %v inside text area", name, s)
			}
		}
	}
}

func TestGeneratePlacesObstacles(t *testing.T) {
	l := GenerateForCells(30, 25)
	border := 2*30 + 2*25 - 4
	if interior := l.Grid.Count(Wall) - border; interior == 0 {
		t.Errorf("no obstacles placed\n%s", l.Grid)
	}
	if l.Grid.Count(Pellet) == 0 {
		t.Error("no pellets generated")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := GenerateForCells(33, 27)
	b := GenerateForCells(33, 27)
	if a.Grid.String() != b.Grid.String() {
		t.Error("same size produced different mazes")
	}
}

func TestGenerateForCellsClamps(t *testing.T) {
	l := GenerateForCells(5, 200)
	if l.Grid.Cols() != 12 {
		t.Errorf("cols = %d, want 12", l.Grid.Cols())
	}
	if l.Grid.Rows() != 55 {
		t.Errorf("rows = %d, want 55", l.Grid.Rows())
	}
}

func TestFallbackLayout(t *testing.T) {
	l := Fallback()
	if l.Grid.Cols() != 19 || l.Grid.Rows() != 21 {
		t.Errorf("fallback size = %dx%d, want 19x21", l.Grid.Cols(), l.Grid.Rows())
	}
	if len(l.Spawns) != 8 {
		t.Errorf("fallback spawns = %d, want 8", len(l.Spawns))
	}
	if !IsConnected(l.Grid) {
		t.Error("fallback maze is not connected")
	}
}

func TestShapeNames(t *testing.T) {
	for s := ShapeSingle; s <= ShapeUShape; s++ {
		got, ok := ParseShape(s.String())
		if !ok || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseShape("triangle"); ok {
		t.Error("unknown shape accepted")
	}
}

func TestObstacleShiftsOffSpawn(t *testing.T) {
	bp := DefaultBlueprint()
	bp.Spawns = []Point{{0.3, 0.3}}
	bp.Obstacles = []Obstacle{{Point{0.3, 0.3}, ShapeSingle}}

	l := Generate(Dimensions{Cols: 21, Rows: 21}, bp)
	g := l.Grid

	spawn := Pos{X: 6, Y: 6}
	if len(l.Spawns) != 1 || l.Spawns[0] != spawn {
		t.Fatalf("spawns = %v, want [%v]", l.Spawns, spawn)
	}
	if g.At(spawn.X, spawn.Y) != GhostSpawn {
		t.Errorf("spawn cell is %v", g.At(spawn.X, spawn.Y))
	}
	if !g.IsWall(6, 5) {
		t.Errorf("obstacle not moved to (6,5):\n%s", g)
	}
	if n := g.Count(Wall) - (2*21 + 2*19); n != 1 {
		t.Errorf("interior walls = %d, want 1", n)
	}
}

func TestObstacleRevertedWhenItSplitsMaze(t *testing.T) {
	// The two rooms only meet through the bridge on row 3.
	g := mustParseGrid(t,
		"########",
		"#......#",
		"#......#",
		"###..###",
		"#......#",
		"#......#",
		"########",
	)
	gen := &generator{g: g, spawnSet: map[Pos]bool{}}
	gen.commit(ShapeHPair.cells(), Pos{X: 3, Y: 3})

	for _, p := range []Pos{{3, 3}, {4, 3}} {
		if got := g.At(p.X, p.Y); got != Pellet {
			t.Errorf("bridge cell %v is %v, want pellet", p, got)
		}
	}
	if !IsConnected(g) {
		t.Errorf("maze split:\n%s", g)
	}

	// Half the bridge keeps the rooms joined, so it stays.
	gen.commit(ShapeSingle.cells(), Pos{X: 3, Y: 3})
	if !g.IsWall(3, 3) || !IsConnected(g) {
		t.Errorf("single wall on a wide bridge should stay:\n%s", g)
	}
}
