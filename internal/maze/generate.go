package maze

import (
	"math"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Shape is the footprint of a declarative obstacle.
type Shape int

const (
	ShapeSingle Shape = iota // 1x1 block
	ShapeHPair               // 2x1 horizontal pair
	ShapeVPair               // 1x2 vertical pair
	ShapeUShape              // 4x2 cup opening upward
)

// String returns the shape name used in config files.
func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapeHPair:
		return "horizontal_pair"
	case ShapeVPair:
		return "vertical_pair"
	case ShapeUShape:
		return "u_shape"
	default:
		return "unknown"
	}
}

// ParseShape converts a config name into a Shape.
func ParseShape(name string) (Shape, bool) {
	for s := ShapeSingle; s <= ShapeUShape; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// cells returns the shape's wall cells relative to its top-left corner.
// The cup is two cells wide inside so its pocket never becomes a dead end.
func (s Shape) cells() []Pos {
	switch s {
	case ShapeHPair:
		return []Pos{{0, 0}, {1, 0}}
	case ShapeVPair:
		return []Pos{{0, 0}, {0, 1}}
	case ShapeUShape:
		return []Pos{{0, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}
	default:
		return []Pos{{0, 0}}
	}
}

func (s Shape) size() (w, h int) {
	switch s {
	case ShapeHPair:
		return 2, 1
	case ShapeVPair:
		return 1, 2
	case ShapeUShape:
		return 4, 2
	default:
		return 1, 1
	}
}

// Point is a position expressed as fractions of the grid size.
type Point struct {
	X, Y float64
}

// Obstacle is one declarative wall placement.
type Obstacle struct {
	At    Point
	Shape Shape
}

// Blueprint is the fixed obstacle and spawn specification that the
// generator rasterizes onto any grid size.
type Blueprint struct {
	Spawns    []Point
	Obstacles []Obstacle

	TextRows     float64 // Height of the reserved text area as a fraction of rows
	TextColStart float64 // Left edge of the text area as a fraction of cols
	TextColEnd   float64 // Right edge of the text area as a fraction of cols
}

// DefaultBlueprint returns the built-in obstacle and spawn table.
func DefaultBlueprint() Blueprint {
	return Blueprint{
		Spawns: []Point{
			{0.08, 0.08}, {0.92, 0.08}, {0.08, 0.92}, {0.92, 0.92},
			{0.50, 0.08}, {0.50, 0.92}, {0.08, 0.50}, {0.92, 0.50},
		},
		Obstacles: []Obstacle{
			{Point{0.22, 0.20}, ShapeUShape},
			{Point{0.78, 0.20}, ShapeUShape},
			{Point{0.38, 0.24}, ShapeHPair},
			{Point{0.62, 0.24}, ShapeHPair},
			{Point{0.50, 0.18}, ShapeVPair},
			{Point{0.14, 0.34}, ShapeVPair},
			{Point{0.86, 0.34}, ShapeVPair},
			{Point{0.30, 0.34}, ShapeSingle},
			{Point{0.70, 0.34}, ShapeSingle},
			{Point{0.22, 0.64}, ShapeHPair},
			{Point{0.78, 0.64}, ShapeHPair},
			{Point{0.14, 0.76}, ShapeVPair},
			{Point{0.86, 0.76}, ShapeVPair},
			{Point{0.36, 0.72}, ShapeUShape},
			{Point{0.64, 0.72}, ShapeUShape},
			{Point{0.50, 0.66}, ShapeHPair},
			{Point{0.28, 0.86}, ShapeSingle},
			{Point{0.72, 0.86}, ShapeSingle},
			{Point{0.50, 0.84}, ShapeSingle},
		},
		TextRows:     0.14,
		TextColStart: 0.20,
		TextColEnd:   0.80,
	}
}

// Layout is a generated maze ready for a session.
type Layout struct {
	Grid     *Grid
	Spawns   []Pos
	TextArea core.Rect
	Dims     Dimensions
}

// spawnOffsets are the vertical shifts tried when an obstacle lands on a
// spawn cell.
var spawnOffsets = [...]int{0, -1, 1, -2, 2}

type generator struct {
	g        *Grid
	text     core.Rect
	spawns   []Pos
	spawnSet map[Pos]bool
}

// Generate rasterizes a blueprint onto a cols x rows grid. The result has
// a wall border, a pellet-filled interior, an empty text area, stamped
// spawn cells and every open cell reachable from every other.
func Generate(dims Dimensions, bp Blueprint) Layout {
	gen := &generator{
		g:        NewBordered(dims.Cols, dims.Rows, Pellet),
		spawnSet: make(map[Pos]bool),
	}
	gen.carveTextArea(bp)
	gen.stampSpawns(bp.Spawns)
	for _, o := range bp.Obstacles {
		gen.placeObstacle(o)
	}

	return Layout{
		Grid:     gen.g,
		Spawns:   gen.spawns,
		TextArea: gen.text,
		Dims:     dims,
	}
}

func (gen *generator) carveTextArea(bp Blueprint) {
	cols, rows := gen.g.cols, gen.g.rows
	h := max(2, int(math.Round(float64(rows)*bp.TextRows)))
	x0 := core.Clamp(int(math.Round(float64(cols)*bp.TextColStart)), 1, cols-2)
	x1 := core.Clamp(int(math.Round(float64(cols)*bp.TextColEnd)), x0+1, cols-1)
	y0 := core.Clamp((rows-h)/2, 1, rows-2)
	h = min(h, rows-1-y0)

	gen.text = core.NewRect(x0, y0, x1-x0, h)
	for y := gen.text.Y; y < gen.text.Bottom(); y++ {
		for x := gen.text.X; x < gen.text.Right(); x++ {
			gen.g.set(x, y, Empty)
		}
	}
}

func (gen *generator) stampSpawns(points []Point) {
	cols, rows := gen.g.cols, gen.g.rows
	for _, pt := range points {
		p := Pos{
			X: core.Clamp(int(math.Round(pt.X*float64(cols-1))), 1, cols-2),
			Y: core.Clamp(int(math.Round(pt.Y*float64(rows-1))), 1, rows-2),
		}
		if gen.text.Contains(p.X, p.Y) {
			p.Y = max(1, gen.text.Y-1)
		}
		if gen.spawnSet[p] {
			continue
		}
		gen.spawnSet[p] = true
		gen.spawns = append(gen.spawns, p)
		gen.g.set(p.X, p.Y, GhostSpawn)
	}
}

// canPlaceWall guards every wall cell the generator commits.
func (gen *generator) canPlaceWall(p Pos) bool {
	if p.X < 1 || p.Y < 1 || p.X > gen.g.cols-2 || p.Y > gen.g.rows-2 {
		return false
	}
	if gen.text.Contains(p.X, p.Y) || gen.spawnSet[p] {
		return false
	}
	return gen.g.At(p.X, p.Y) == Pellet
}

// origin converts an obstacle's fractional center into a top-left cell,
// shifted inward so the shape keeps a one-cell corridor along the border.
func (gen *generator) origin(o Obstacle) (Pos, bool) {
	w, h := o.Shape.size()
	maxX := gen.g.cols - 3 - (w - 1)
	maxY := gen.g.rows - 3 - (h - 1)
	if maxX < 2 || maxY < 2 {
		return Pos{}, false
	}
	cx := int(math.Round(o.At.X * float64(gen.g.cols)))
	cy := int(math.Round(o.At.Y * float64(gen.g.rows)))
	return Pos{
		X: core.Clamp(cx-w/2, 2, maxX),
		Y: core.Clamp(cy-h/2, 2, maxY),
	}, true
}

func (gen *generator) placeObstacle(o Obstacle) {
	at, ok := gen.origin(o)
	if !ok {
		return
	}
	shape := o.Shape.cells()
	_, h := o.Shape.size()

	if gen.touchesSpawn(shape, at) {
		for _, dy := range spawnOffsets {
			shifted := at.Add(0, dy)
			if shifted.Y < 2 || shifted.Y > gen.g.rows-3-(h-1) {
				continue
			}
			if gen.fullyClear(shape, shifted) {
				at = shifted
				break
			}
		}
	}
	gen.commit(shape, at)
}

func (gen *generator) touchesSpawn(shape []Pos, at Pos) bool {
	for _, c := range shape {
		if gen.spawnSet[at.Add(c.X, c.Y)] {
			return true
		}
	}
	return false
}

func (gen *generator) fullyClear(shape []Pos, at Pos) bool {
	for _, c := range shape {
		if !gen.canPlaceWall(at.Add(c.X, c.Y)) {
			return false
		}
	}
	return true
}

// commit places the cells that pass the guard and the dead-end probe, then
// reverts the whole obstacle if it split the maze.
func (gen *generator) commit(shape []Pos, at Pos) {
	placed := make([]Pos, 0, len(shape))
	for _, c := range shape {
		p := at.Add(c.X, c.Y)
		if !gen.canPlaceWall(p) || WouldCreateDeadEnd(gen.g, p) {
			continue
		}
		gen.g.set(p.X, p.Y, Wall)
		placed = append(placed, p)
	}

	if len(placed) > 0 && !IsConnected(gen.g) {
		for _, p := range placed {
			gen.g.set(p.X, p.Y, Pellet)
		}
	}
}

// GenerateForScreen sizes a maze for a pixel viewport. Without size hints
// the fixed fallback maze is returned.
func GenerateForScreen(width, height float64) Layout {
	if width <= 0 || height <= 0 {
		return Fallback()
	}
	return Generate(ChooseDimensions(width, height, DefaultSizing()), DefaultBlueprint())
}

// GenerateForCells builds a maze of an explicit size, clamped to the
// accepted bounds. Without size hints the fixed fallback maze is returned.
func GenerateForCells(cols, rows int) Layout {
	if cols <= 0 || rows <= 0 {
		return Fallback()
	}
	return Generate(FitCells(cols, rows, DefaultSizing()), DefaultBlueprint())
}
