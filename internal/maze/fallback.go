package maze

import "github.com/vovakirdan/ghostmaze/internal/core"

// fallbackRows is the hand-authored maze used when no size hints exist.
var fallbackRows = []string{
	"###################",
	"#G.......#.......G#",
	"#.##.###.#.###.##.#",
	"#........G........#",
	"#.##.#.#####.#.##.#",
	"#....#.......#....#",
	"####.### # ###.####",
	"#G...#       #...G#",
	"#.##.#       #.##.#",
	"#....#       #....#",
	"#.##.#########.##.#",
	"#.................#",
	"#.##.###.#.###.##.#",
	"#..#.....#.....#..#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#G...............G#",
	"#.##.##.###.##.##.#",
	"#........G........#",
	"###################",
}

// Fallback returns the fixed 19x21 maze.
func Fallback() Layout {
	g, spawns := MustParse(fallbackRows)
	return Layout{
		Grid:     g,
		Spawns:   spawns,
		TextArea: core.NewRect(6, 7, 7, 3),
		Dims:     Dimensions{Cols: g.Cols(), Rows: g.Rows()},
	}
}
