package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/maze"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

var (
	flagMazeWidth  float64
	flagMazeHeight float64
	flagMazeCols   int
	flagMazeRows   int
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze",
	Long: `Generate a maze and print it as text.

Size it either from pixel hints (--width/--height, converted to cells by
the configured cell size bounds) or directly in cells (--cols/--rows).
Without either, the maze fits the current terminal.

Legend: # wall, . pellet, G ghost spawn, space open floor.

Examples:
  ghostmaze maze --width 800 --height 600
  ghostmaze maze --cols 30 --rows 21`,
	Run: runMaze,
}

func init() {
	mazeCmd.Flags().Float64Var(&flagMazeWidth, "width", 0, "Screen width hint in pixels")
	mazeCmd.Flags().Float64Var(&flagMazeHeight, "height", 0, "Screen height hint in pixels")
	mazeCmd.Flags().IntVar(&flagMazeCols, "cols", 0, "Maze width in cells")
	mazeCmd.Flags().IntVar(&flagMazeRows, "rows", 0, "Maze height in cells")
	mazeCmd.MarkFlagsRequiredTogether("width", "height")
	mazeCmd.MarkFlagsRequiredTogether("cols", "rows")
	mazeCmd.MarkFlagsMutuallyExclusive("width", "cols")
}

func runMaze(_ *cobra.Command, _ []string) {
	var gen session.Generator
	switch {
	case flagMazeWidth > 0 || flagMazeHeight > 0:
		gen = mazeConfig.ScreenGenerator(flagMazeWidth, flagMazeHeight)
	case flagMazeCols > 0 || flagMazeRows > 0:
		gen = mazeConfig.CellGenerator(flagMazeCols, flagMazeRows)
	default:
		rc := runtimeConfig()
		gen = mazeConfig.CellGenerator(rc.ScreenW/2, rc.ScreenH-3)
	}

	layout := gen()
	printLayout(layout)
}

func printLayout(l maze.Layout) {
	g := l.Grid
	fmt.Fprintln(os.Stdout, g.String())
	fmt.Println()
	fmt.Printf("Size:     %dx%d cells\n", g.Cols(), g.Rows())
	fmt.Printf("Pellets:  %d\n", g.Count(maze.Pellet))
	fmt.Printf("Spawns:   %d\n", len(l.Spawns))
	fmt.Printf("Text box: x=%d y=%d %dx%d\n", l.TextArea.X, l.TextArea.Y, l.TextArea.W, l.TextArea.H)
	if maze.IsConnected(g) {
		fmt.Println("Open floor is fully connected.")
	} else {
		fmt.Println("Warning: open floor is not connected.")
	}
}
