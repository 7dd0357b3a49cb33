package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is a single screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size cell buffer. Games draw into it each frame and
// the host turns it into terminal output. Drawing outside the buffer is
// clipped silently.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major, width*height
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the buffer.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	if cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Put writes one colored rune.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Cell returns the cell at (x, y), blank when out of bounds.
func (s *Screen) Cell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// Text writes s left to right starting at (x, y), one cell per rune.
func (s *Screen) Text(x, y int, text string, c Color) {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
}

// TextCentered writes text centered on row y. Text wider than the
// screen starts at column 0.
func (s *Screen) TextCentered(y int, text string, c Color) {
	s.Text(max(0, (s.width-utf8.RuneCountInString(text))/2), y, text, c)
}

// Fill sets every cell of r.
func (s *Screen) Fill(r Rect, ch rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Put(x, y, ch, c)
		}
	}
}

// HLine draws n copies of ch rightwards from (x, y).
func (s *Screen) HLine(x, y, n int, ch rune, c Color) {
	for i := range n {
		s.Put(x+i, y, ch, c)
	}
}

// Frame outlines r with box-drawing characters. Rects smaller than 2x2
// are skipped.
func (s *Screen) Frame(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	s.HLine(r.X+1, r.Y, r.W-2, '─', c)
	s.HLine(r.X+1, bottom, r.W-2, '─', c)
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text, blank when out of bounds.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, cell := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = cell.Rune
	}
	return string(runes)
}

// String returns the buffer as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
