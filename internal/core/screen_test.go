package core

import (
	"strings"
	"testing"
)

// rows builds the expected String() output.
func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != rows("    ", "    ") {
		t.Errorf("new screen = %q", got)
	}

	empty := NewScreen(-3, 5)
	if empty.Width() != 0 || empty.String() != rows("", "", "", "", "") {
		t.Errorf("negative width should clamp to 0, got %d", empty.Width())
	}
}

func TestScreenPutAndCell(t *testing.T) {
	s := NewScreen(3, 3)
	s.Put(1, 2, 'x', ColorRed)

	if c := s.Cell(1, 2); c.Rune != 'x' || c.Color != ColorRed {
		t.Errorf("Cell(1,2) = %+v", c)
	}

	// Out of bounds writes are dropped and reads are blank.
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		s.Put(p[0], p[1], '!', ColorRed)
		if c := s.Cell(p[0], p[1]); c != blankCell {
			t.Errorf("Cell(%d,%d) = %+v, want blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), '!') {
		t.Error("out of bounds write leaked into the buffer")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "left",
			draw: func(s *Screen) { s.Text(0, 0, "ab", ColorDefault) },
			want: rows("ab    ", "      "),
		},
		{
			name: "clipped",
			draw: func(s *Screen) { s.Text(4, 1, "wxyz", ColorDefault) },
			want: rows("      ", "    wx"),
		},
		{
			name: "negative start",
			draw: func(s *Screen) { s.Text(-1, 0, "abc", ColorDefault) },
			want: rows("bc    ", "      "),
		},
		{
			name: "multibyte runes take one cell",
			draw: func(s *Screen) { s.Text(0, 0, "█·█", ColorDefault) },
			want: rows("█·█   ", "      "),
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.TextCentered(1, "ab", ColorDefault) },
			want: rows("      ", "  ab  "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 2)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(5, 4)
	s.Fill(NewRect(1, 1, 2, 2), '#', ColorBlue)
	if got := s.String(); got != rows("     ", " ##  ", " ##  ", "     ") {
		t.Errorf("Fill:\n%s", got)
	}

	s.Clear()
	s.Frame(NewRect(0, 0, 4, 3), ColorGray)
	if got := s.String(); got != rows("┌──┐ ", "│  │ ", "└──┘ ", "     ") {
		t.Errorf("Frame:\n%s", got)
	}
	if c := s.Cell(0, 0); c.Color != ColorGray {
		t.Errorf("frame color = %v, want gray", c.Color)
	}

	s.Clear()
	s.Frame(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Frame narrower than 2 should draw nothing")
	}

	s.HLine(1, 3, 10, '─', ColorDefault)
	if got := s.Row(3); got != " ────" {
		t.Errorf("HLine row = %q", got)
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(3, 2)
	s.Text(0, 0, "abc", ColorRed)
	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != rows("  ", "  ", "  ") {
		t.Errorf("resized screen = %q, want blank", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.Text(0, 1, "xyz", ColorDefault)

	if got := s.Row(1); got != "xyz" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want blank", got)
	}
}
