package maze

import (
	"math"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// SizingOptions bounds the cell-size search used to fit a maze to a
// viewport given in pixels.
type SizingOptions struct {
	MinCell   float64 // Smallest candidate cell size in pixels
	MaxCell   float64 // Largest candidate cell size in pixels
	CellStep  float64 // Search step
	IdealCell float64 // Cell size used when no candidate fits

	MinCols, MaxCols int // Accepted grid widths
	MinRows, MaxRows int // Accepted grid heights

	// Clamp applied to the ideal-cell fallback.
	FallbackMinCols, FallbackMaxCols int
	FallbackMinRows, FallbackMaxRows int

	OddRows bool // Force an odd row count for vertical symmetry
}

// DefaultSizing returns the sizing bounds used by the game.
func DefaultSizing() SizingOptions {
	return SizingOptions{
		MinCell:         10,
		MaxCell:         50,
		CellStep:        0.5,
		IdealCell:       24,
		MinCols:         12,
		MaxCols:         45,
		MinRows:         15,
		MaxRows:         55,
		FallbackMinCols: 15,
		FallbackMaxCols: 35,
		FallbackMinRows: 20,
		FallbackMaxRows: 45,
		OddRows:         true,
	}
}

// Dimensions is the outcome of sizing: grid size plus the cell size in
// pixels that produced it (zero when sized directly in cells).
type Dimensions struct {
	Cols     int
	Rows     int
	CellSize float64
}

// Scoring weights for candidate cell sizes.
const (
	utilWeight      = 40.0
	fullFitBonus    = 20.0
	fullFitFraction = 0.92
	cellSizeWeight  = 10.0
	aspectWeight    = 30.0
	aspectTolerance = 0.99
)

// ChooseDimensions picks the grid size that best fills a width x height
// pixel area. It never fails: with no acceptable candidate it falls back
// to the ideal cell size and clamps the result.
func ChooseDimensions(width, height float64, opts SizingOptions) Dimensions {
	if width <= 0 || height <= 0 {
		return Dimensions{Cols: opts.FallbackMinCols, Rows: fixRows(opts.FallbackMinRows, opts)}
	}

	screenAspect := width / height
	best := Dimensions{}
	bestScore := math.Inf(-1)

	for size := opts.MinCell; size <= opts.MaxCell+1e-9; size += opts.CellStep {
		cols := int(math.Floor(width / size))
		rows := int(math.Floor(height / size))
		if cols < opts.MinCols || cols > opts.MaxCols || rows < opts.MinRows || rows > opts.MaxRows {
			continue
		}

		widthUtil := float64(cols) * size / width
		heightUtil := float64(rows) * size / height

		score := utilWeight*widthUtil + utilWeight*heightUtil
		if widthUtil > fullFitFraction && heightUtil > fullFitFraction {
			score += fullFitBonus
		}
		score += cellSizeWeight * size / opts.MaxCell
		score -= aspectWeight * math.Abs(float64(cols)/float64(rows)-screenAspect)

		if score > bestScore {
			bestScore = score
			best = Dimensions{Cols: cols, Rows: rows, CellSize: size}
		}
	}

	if best.Cols == 0 {
		best = Dimensions{
			Cols:     core.Clamp(int(width/opts.IdealCell), opts.FallbackMinCols, opts.FallbackMaxCols),
			Rows:     core.Clamp(int(height/opts.IdealCell), opts.FallbackMinRows, opts.FallbackMaxRows),
			CellSize: opts.IdealCell,
		}
	}

	// Prefer width-bound layouts: a grid narrower than the screen is widened.
	gridAspect := float64(best.Cols) / float64(best.Rows)
	if gridAspect < screenAspect*aspectTolerance {
		target := int(math.Ceil(float64(best.Rows)*screenAspect)) + 2
		if target > best.Cols {
			best.Cols = min(target, opts.MaxCols)
		}
	}

	best.Rows = fixRows(best.Rows, opts)
	return best
}

// FitCells clamps an explicit cell count to the accepted bounds.
func FitCells(cols, rows int, opts SizingOptions) Dimensions {
	return Dimensions{
		Cols: core.Clamp(cols, opts.MinCols, opts.MaxCols),
		Rows: fixRows(core.Clamp(rows, opts.MinRows, opts.MaxRows), opts),
	}
}

// fixRows applies the odd-row policy without leaving [MinRows, MaxRows].
func fixRows(rows int, opts SizingOptions) int {
	if !opts.OddRows || rows%2 == 1 {
		return rows
	}
	if rows-1 >= opts.MinRows {
		return rows - 1
	}
	return rows + 1
}
