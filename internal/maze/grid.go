// Package maze holds the grid model and the procedural maze generator.
//
// A Grid is treated as immutable once it has been handed to a session:
// pellet consumption goes through ConsumePellets, which returns a fresh
// grid instead of writing into the shared one.
package maze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Tile classifies a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	Pellet
	GhostSpawn
	PowerPellet // reserved; passable, not scored
	Door        // reserved; passable
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Pellet:
		return "pellet"
	case GhostSpawn:
		return "ghost_spawn"
	case PowerPellet:
		return "power_pellet"
	case Door:
		return "door"
	default:
		return "unknown"
	}
}

// Rune returns the ASCII glyph used by Parse and Grid.String.
func (t Tile) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Pellet:
		return '.'
	case GhostSpawn:
		return 'G'
	case PowerPellet:
		return 'o'
	case Door:
		return '-'
	default:
		return ' '
	}
}

// Pos is an integer cell coordinate. For entities it is the top-left
// corner of the footprint.
type Pos struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular row-major tile map.
type Grid struct {
	cols  int
	rows  int
	tiles []Tile
}

// NewGrid creates a cols x rows grid filled with the given tile.
func NewGrid(cols, rows int, fill Tile) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	g := &Grid{cols: cols, rows: rows, tiles: make([]Tile, cols*rows)}
	for i := range g.tiles {
		g.tiles[i] = fill
	}
	return g
}

// NewBordered creates a grid with a wall ring and the given interior tile.
func NewBordered(cols, rows int, interior Tile) *Grid {
	g := NewGrid(cols, rows, interior)
	g.drawBorder()
	return g
}

func (g *Grid) drawBorder() {
	for x := 0; x < g.cols; x++ {
		g.set(x, 0, Wall)
		g.set(x, g.rows-1, Wall)
	}
	for y := 0; y < g.rows; y++ {
		g.set(0, y, Wall)
		g.set(g.cols-1, y, Wall)
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the tile at (x, y). Cells outside the grid read as Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.tiles[y*g.cols+x]
}

// IsWall reports whether the cell blocks movement.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

func (g *Grid) set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.tiles[y*g.cols+x] = t
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// With returns a copy of the grid with one cell replaced.
func (g *Grid) With(x, y int, t Tile) *Grid {
	c := g.Clone()
	c.set(x, y, t)
	return c
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// FootprintClear reports whether a w x h footprint at (x, y) lies fully
// inside the grid and covers no wall.
func (g *Grid) FootprintClear(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if x < 0 || y < 0 || x+w > g.cols || y+h > g.rows {
		return false
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if g.tiles[(y+dy)*g.cols+x+dx] == Wall {
				return false
			}
		}
	}
	return true
}

// ConsumePellets clears every pellet covered by r. When nothing is eaten
// the receiver is returned unchanged; otherwise a new grid is returned and
// the receiver is left untouched.
func (g *Grid) ConsumePellets(r core.Rect) (*Grid, int) {
	var next *Grid
	eaten := 0
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if g.At(x, y) != Pellet {
				continue
			}
			if next == nil {
				next = g.Clone()
			}
			next.set(x, y, Empty)
			eaten++
		}
	}
	if next == nil {
		return g, 0
	}
	return next, eaten
}

// String renders the grid as ASCII, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.cols; x++ {
			sb.WriteRune(g.At(x, y).Rune())
		}
	}
	return sb.String()
}

// Parse builds a grid from ASCII rows using the glyphs of Tile.Rune.
// Ghost spawn cells are returned in row-major order.
func Parse(lines []string) (*Grid, []Pos, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("maze: empty layout")
	}
	cols := len([]rune(lines[0]))
	g := NewGrid(cols, len(lines), Empty)
	var spawns []Pos

	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, nil, fmt.Errorf("maze: row %d has %d cells, expected %d", y, len(runes), cols)
		}
		for x, r := range runes {
			var t Tile
			switch r {
			case '#':
				t = Wall
			case '.':
				t = Pellet
			case 'G':
				t = GhostSpawn
				spawns = append(spawns, Pos{X: x, Y: y})
			case 'o':
				t = PowerPellet
			case '-':
				t = Door
			case ' ':
				t = Empty
			default:
				return nil, nil, fmt.Errorf("maze: unknown glyph %q at (%d, %d)", r, x, y)
			}
			g.set(x, y, t)
		}
	}
	return g, spawns, nil
}

// MustParse is Parse for hand-authored layouts known to be valid.
func MustParse(lines []string) (*Grid, []Pos) {
	g, spawns, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g, spawns
}
