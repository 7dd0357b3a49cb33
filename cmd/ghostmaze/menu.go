package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in menu mode. After a run ends, press B or Esc to get back
to the menu and pick again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  ghostmaze menu
  ghostmaze menu --fps 30 --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer store.Close()
	return tui.RunSession(store, runtimeConfig(), appLogger)
}
