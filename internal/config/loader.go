package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const mazeConfigFile = "ghostmaze.yaml"

// Load loads the ghost maze configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/ghostmaze.yaml -> ./configs/ghostmaze.yaml -> embedded default
func Load(customPath string) (MazeConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (MazeConfig, error) {
	// A custom path must exist and parse; the other sources are optional.
	if customPath != "" {
		cfg := DefaultMazeConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(mazeConfigFile), filepath.Join("configs", mazeConfigFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := readOptional(path); ok {
			return cfg, nil
		}
	}

	return embeddedDefaults()
}

// embeddedDefaults parses the default file compiled into the binary.
func embeddedDefaults() (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), fmt.Errorf("config: parse embedded %s: %w", mazeConfigFile, err)
	}
	return cfg, nil
}

// readOptional reads a config file that may be missing or broken.
func readOptional(path string) (MazeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeConfig{}, false
	}
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
