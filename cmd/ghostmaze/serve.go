package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server so others can play from their own terminal.

Every connection gets its own menu and its own runs; the server only
carries the screen and the keys. All connections share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates one at ~/.arcade/ghostmaze_host_key

Examples:
  ghostmaze serve
  ghostmaze serve --ssh :2222
  ghostmaze serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	logger := appLogger
	if logger == nil {
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			ReportTimestamp: true,
			Prefix:          "ghostmaze-ssh",
		})
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}
	cmd.Printf("Serving ghostmaze on %s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe()
}
