package config

import (
	_ "embed"
)

//go:embed defaults/ghostmaze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration. It matches the
// embedded defaults/ghostmaze.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Timing: TimingConfig{
			TickMS:     180,
			WinDelayMS: 1000,
			MessageMS:  2000,
		},
		Scoring: ScoringConfig{
			Pellet: 10,
			Ghost:  200,
		},
		Player: PlayerConfig{
			Height:      1,
			AspectRatio: 1.0,
		},
		Ghosts: GhostsConfig{
			PoolSize:      8,
			InitialActive: 3,
			PaceEvery:     5,
			Roster: []GhostConfig{
				{Name: "Wisp", Behavior: "wanderer", Color: "red"},
				{Name: "Glide", Behavior: "horizontal-patrol", Color: "pink"},
				{Name: "Lift", Behavior: "vertical-patrol", Color: "bright_cyan"},
				{Name: "Flicker", Behavior: "erratic", Color: "orange"},
				{Name: "Nook", Behavior: "corner-hugger", Color: "green"},
				{Name: "Mope", Behavior: "slow-mover", Color: "blue"},
				{Name: "Zag", Behavior: "zigzag", Color: "magenta"},
				{Name: "Warden", Behavior: "distance-keeper", Color: "white"},
			},
		},
		Maze: LayoutConfig{
			MinCell:   10,
			MaxCell:   50,
			CellStep:  0.5,
			IdealCell: 24,
			MinCols:   12,
			MaxCols:   45,
			MinRows:   15,
			MaxRows:   55,
			OddRows:   true,
		},
	}
}
