package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/registry"
	"github.com/vovakirdan/ghostmaze/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and the ghost roster",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	opts := mazeConfig.Options(0)
	fmt.Println()
	fmt.Printf("Ghosts (%d in the pool):\n", opts.PoolSize)
	fmt.Println()
	roster := opts.Roster
	if len(roster) == 0 {
		roster = session.DefaultRoster()
	}
	for i := range opts.PoolSize {
		p := roster[i%len(roster)]
		fmt.Printf("  %-10s  %s\n", p.Name, p.Behavior)
	}

	fmt.Println()
	fmt.Println("Run 'ghostmaze play <id>' to play a variant.")
}
