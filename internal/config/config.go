// Package config provides YAML-based configuration loading and the fixed
// difficulty presets for ghost maze.
package config

// MazeConfig contains all configuration for a ghost maze session.
type MazeConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Player  PlayerConfig  `yaml:"player"`
	Ghosts  GhostsConfig  `yaml:"ghosts"`
	Maze    LayoutConfig  `yaml:"maze"`
}

// TimingConfig defines tick cadence and feedback timers.
type TimingConfig struct {
	TickMS     int `yaml:"tick_ms"`      // Simulation tick duration
	WinDelayMS int `yaml:"win_delay_ms"` // Grace period before the win screen
	MessageMS  int `yaml:"message_ms"`   // How long "Ate X!" stays up
}

// ScoringConfig defines rewards.
type ScoringConfig struct {
	Pellet int `yaml:"pellet"`
	Ghost  int `yaml:"ghost"`
}

// PlayerConfig defines the player footprint.
type PlayerConfig struct {
	Height      int     `yaml:"height"`
	AspectRatio float64 `yaml:"aspect_ratio"` // width = floor(height * aspect_ratio)
}

// GhostsConfig defines the ghost pool.
type GhostsConfig struct {
	PoolSize      int           `yaml:"pool_size"`
	InitialActive int           `yaml:"initial_active"`
	PaceEvery     int           `yaml:"pace_every"` // Ghosts skip every n-th tick, 0 disables
	Roster        []GhostConfig `yaml:"roster"`
}

// GhostConfig describes one roster entry.
type GhostConfig struct {
	Name     string `yaml:"name"`
	Behavior string `yaml:"behavior"`
	Color    string `yaml:"color"`
}

// LayoutConfig bounds maze sizing and optionally replaces the obstacle table.
type LayoutConfig struct {
	MinCell   float64 `yaml:"min_cell"`
	MaxCell   float64 `yaml:"max_cell"`
	CellStep  float64 `yaml:"cell_step"`
	IdealCell float64 `yaml:"ideal_cell"`
	MinCols   int     `yaml:"min_cols"`
	MaxCols   int     `yaml:"max_cols"`
	MinRows   int     `yaml:"min_rows"`
	MaxRows   int     `yaml:"max_rows"`
	OddRows   bool    `yaml:"odd_rows"`

	Obstacles []ObstacleConfig `yaml:"obstacles"` // Empty keeps the built-in table
}

// ObstacleConfig is one obstacle placed by fractions of the grid size.
type ObstacleConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Shape string  `yaml:"shape"`
}
