package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidemaze/internal/audio"
	"github.com/vovakirdan/slidemaze/internal/game"
	"github.com/vovakirdan/slidemaze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the slidemaze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own maze. Sound is not available over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.slidemaze/host_key

Examples:
  slidemaze serve                           # Listen on :23234 with auto-generated key
  slidemaze serve --ssh :2222               # Listen on port 2222
  slidemaze serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slidemaze-ssh",
	})

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	hostKey := flagHostKey
	if hostKey != "" {
		if hostKey, err = expandHome(hostKey); err != nil {
			return err
		}
	}

	opts := gameOptions(cfg)
	newGame := func(l *log.Logger) tui.Game {
		return game.New(layout, opts, audio.NewNopPlayer(), l)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: hostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    cfg.Render.FPS,
		Input: tui.Options{
			SwipeThreshold: cfg.Input.SwipeThreshold,
			CellWidth:      game.CellWidth,
		},
	}, newGame, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting slidemaze SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
