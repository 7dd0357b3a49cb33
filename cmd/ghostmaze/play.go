package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/games/ghostmaze"
	"github.com/vovakirdan/ghostmaze/internal/platform/tui"
	"github.com/vovakirdan/ghostmaze/internal/registry"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, ghostmaze by default.

Controls:
  Arrows/WASD/hjkl - Steer (the turn is taken at the next opening)
  P/Space          - Pause
  R                - New maze
  Q/Ctrl+C         - Quit

Examples:
  ghostmaze play
  ghostmaze play ghostmaze_easy
  ghostmaze play ghostmaze_hard --seed 42 --fps 30
  ghostmaze play --difficulty easy
  ghostmaze play --config ./my-ghostmaze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var flagDifficulty string

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preset to play: easy, normal or hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := ghostmaze.VariantID(config.DifficultyNormal)
	switch {
	case len(args) == 1 && flagDifficulty != "":
		return fmt.Errorf("give either a variant or --difficulty, not both")
	case len(args) == 1:
		gameID = args[0]
	case flagDifficulty != "":
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		gameID = ghostmaze.VariantID(preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'ghostmaze list' to see variants)", err)
	}

	store := openStore()
	defer store.Close()
	return tui.Run(game, store, runtimeConfig(), appLogger)
}

// runtimeConfig sizes the host screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play goes on without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
