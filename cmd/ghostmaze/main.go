// ghostmaze is a terminal maze chase: clear the pellets, eat every ghost.
//
// Usage:
//
//	ghostmaze list              - List variants and the ghost roster
//	ghostmaze play [variant]    - Play a variant (default: ghostmaze)
//	ghostmaze menu              - Pick variants interactively
//	ghostmaze maze              - Print a generated maze
//	ghostmaze scores [variant]  - Show high scores
//	ghostmaze serve             - Start the SSH server
//
// Global flags:
//
//	--fps <rate>       - Host frame rate (default: 60)
//	--seed <value>     - RNG seed for reproducible runs
//	--db <path>        - Scores database (default: ~/.arcade/scores.db)
//	--config <path>    - Custom ghostmaze.yaml
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/games/ghostmaze"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

// Set up by the root command before any subcommand runs.
var (
	mazeConfig config.MazeConfig
	appLogger  *log.Logger
	logFile    *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostmaze",
	Short: "Ghost Maze - a maze chase in your terminal",
	Long: `Ghost Maze drops you into a generated maze with a pack of ghosts.
Every ghost runs its own policy: wanderers, patrols, corner huggers,
zigzaggers and a few that keep their distance. Eat them all to win.

Examples:
  ghostmaze play
  ghostmaze play ghostmaze_hard --seed 42
  ghostmaze menu
  ghostmaze maze --cols 30 --rows 21
  ghostmaze serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom ghostmaze.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the game config and logger shared by every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	mazeConfig = cfg
	ghostmaze.SetConfig(cfg)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		appLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "ghostmaze",
		})
		ghostmaze.SetLogger(appLogger)
	}
	return nil
}
