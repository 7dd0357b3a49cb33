package ghostmaze

import (
	"fmt"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/maze"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

// Glyph pairs, one per maze cell.
var (
	wallGlyph   = [cellWidth]rune{'█', '█'}
	pelletGlyph = [cellWidth]rune{' ', '·'}
	playerGlyph = [cellWidth]rune{'(', ')'}
	ghostGlyph  = [cellWidth]rune{'{', '}'}
)

const footer = "arrows/wasd move  p pause  r restart  q quit"

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.sess == nil {
		g.renderHUD(dst, nil)
		sizing := g.cfg.Sizing()
		need := fmt.Sprintf("Need at least %dx%d", sizing.MinCols*cellWidth, sizing.MinRows+hudHeight+footerH)
		renderOverlay(dst, "Window too small", need)
		return
	}

	st := g.sess.Snapshot()
	g.renderHUD(dst, st)
	g.renderGrid(dst, st.Grid)
	g.renderText(dst, st)

	for _, a := range st.Agents {
		if a.Active {
			g.renderEntity(dst, a.Entity, ghostGlyph)
		}
	}
	g.renderEntity(dst, st.Player, playerGlyph)

	dst.TextCentered(dst.Height()-1, footer, core.ColorGray)

	switch {
	case st.Status == session.Won:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  |  R to play again", st.Score))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, st *session.State) {
	hud := " " + g.Title()
	if st != nil {
		hud += fmt.Sprintf("  Score: %d  Ghosts: %d/%d  Pellets: %d",
			st.Score, st.GhostsEaten, len(st.Agents), st.PelletsLeft)
	}
	dst.Text(0, 0, hud, core.ColorBrightWhite)
	dst.HLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) cell(dst *core.Screen, x, y int, glyph [cellWidth]rune, c core.Color) {
	sx := g.offsetX + x*cellWidth
	sy := g.offsetY + y
	for i, r := range glyph {
		dst.Put(sx+i, sy, r, c)
	}
}

func (g *Game) renderGrid(dst *core.Screen, grid *maze.Grid) {
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			switch grid.At(x, y) {
			case maze.Wall:
				g.cell(dst, x, y, wallGlyph, core.ColorBlue)
			case maze.Pellet:
				g.cell(dst, x, y, pelletGlyph, core.ColorYellow)
			}
		}
	}
}

func (g *Game) renderEntity(dst *core.Screen, e engine.Entity, glyph [cellWidth]rune) {
	for dy := 0; dy < e.Height; dy++ {
		for dx := 0; dx < e.Width; dx++ {
			g.cell(dst, e.Pos.X+dx, e.Pos.Y+dy, glyph, e.Color)
		}
	}
}

// renderText writes the status line into the reserved text area.
func (g *Game) renderText(dst *core.Screen, st *session.State) {
	var text string
	color := core.ColorBrightWhite
	switch st.Status {
	case session.Idle:
		text = "Press an arrow to start"
	case session.Playing:
		text = st.MessageAt(g.clock)
		color = core.ColorBrightYellow
	case session.Won:
		text = "All ghosts eaten!"
		color = core.ColorBrightGreen
	}
	if text == "" || st.TextArea.Empty() {
		return
	}

	area := st.TextArea
	width := area.W * cellWidth
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	x := g.offsetX + area.X*cellWidth + (width-len(runes))/2
	y := g.offsetY + area.Y + area.H/2
	dst.Text(x, y, string(runes), color)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.Frame(box, core.ColorBrightWhite)
	centered := func(y int, s string) {
		dst.Text(box.X+(box.W-len([]rune(s)))/2, y, s, core.ColorBrightWhite)
	}
	centered(box.Y+1, line1)
	centered(box.Y+3, line2)
}
