package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetValues is one row of the difficulty table. Values are fixed for
// the whole session.
type PresetValues struct {
	InitialActive int
	PaceEvery     int
}

var presetTable = map[DifficultyPreset]PresetValues{
	DifficultyEasy:   {InitialActive: 2, PaceEvery: 3},
	DifficultyNormal: {InitialActive: 3, PaceEvery: 5},
	DifficultyHard:   {InitialActive: 4, PaceEvery: 8},
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(name)
	if _, ok := presetTable[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// Values returns the table row for the preset, falling back to normal.
func (p DifficultyPreset) Values() PresetValues {
	if v, ok := presetTable[p]; ok {
		return v
	}
	return presetTable[DifficultyNormal]
}

// ApplyPreset overrides the ghost settings of cfg with the preset's row.
func ApplyPreset(cfg *MazeConfig, preset DifficultyPreset) {
	v := preset.Values()
	cfg.Ghosts.InitialActive = v.InitialActive
	cfg.Ghosts.PaceEvery = v.PaceEvery
}
