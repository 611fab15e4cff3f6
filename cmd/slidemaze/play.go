package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slidemaze/internal/audio"
	"github.com/vovakirdan/slidemaze/internal/core"
	"github.com/vovakirdan/slidemaze/internal/game"
	"github.com/vovakirdan/slidemaze/internal/platform/tui"
)

var (
	flagFPS     int
	flagSound   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze in this terminal",
	Long: `Play the maze locally.

Controls:
  Arrows/WASD/HJKL  - Slide
  Mouse drag        - Slide in the drag direction
  R/Right click     - Reset the maze
  M/Click [♪]       - Toggle sound
  ?                 - More help
  Q/Ctrl+C          - Quit

Examples:
  slidemaze play
  slidemaze play --sound
  slidemaze play --fps 30 --config ./slidemaze.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Animation frame rate (0 = from config)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Start with sound on")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "~/.slidemaze/slidemaze.log", "Log file path (empty to discard)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logOut, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logOut.Close() //nolint:errcheck // Best-effort close

	// The terminal belongs to the UI, so logs go to the file.
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "slidemaze",
	})

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Render.FPS,
		Sound:    cfg.Audio.Enabled,
	}
	if cmd.Flags().Changed("fps") {
		rc.TickRate = flagFPS
	}
	if cmd.Flags().Changed("sound") {
		rc.Sound = flagSound
	}

	player := audio.NewBeepPlayer(cfg.Audio.Volume, logger)
	defer player.Close()
	if rc.Sound {
		player.SetMuted(false)
	}

	g := game.New(layout, gameOptions(cfg), player, logger)
	logger.Info("game started", "fps", rc.TickRate, "sound", !player.Muted())

	if err := tui.Run(g, rc, tui.Options{
		SwipeThreshold: cfg.Input.SwipeThreshold,
		CellWidth:      game.CellWidth,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
