package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/registry"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a variant, or a summary of every
variant when none is given. --recent lists the latest recorded runs.

Examples:
  ghostmaze scores
  ghostmaze scores ghostmaze_hard
  ghostmaze scores ghostmaze --recent`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List recent runs instead of top scores")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ghostmaze list' to see available variants.")
		os.Exit(1)
	}

	if flagRecent {
		err = printRecent(store, gameID, info.Title)
	} else {
		err = printTop(store, gameID, info.Title)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTop(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ghostmaze play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}
	return nil
}

func printRecent(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-7s  %s\n", "Run", "Score", "Ghosts", "Pellets", "Ticks", "Date")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-6d  %-6d  %-7d  %-7d  %s\n",
			r.RunID[:8], r.Score, r.GhostsEaten, r.PelletsEaten, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-5s  %-5s  %-6s  %-8s  %-6s  %s\n", "Variant", "Runs", "Wins", "Best", "Average", "Ghosts", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-16s  %-5d  %-5d  %-6d  %-8.0f  %-6d  %s\n",
			id, st.Runs, st.Wins, st.BestScore, st.AvgScore, st.MostGhosts, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
