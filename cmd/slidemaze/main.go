// slidemaze is a sliding maze puzzle for the terminal.
//
// Usage:
//
//	slidemaze                - Play the built-in maze (same as "play")
//	slidemaze play           - Play locally
//	slidemaze serve          - Start SSH server for remote play
//	slidemaze show           - Print the parsed maze and its portals
//
// Global flags:
//
//	--config <path>  - Path to config YAML
//	--layout <path>  - Path to a maze layout text file (default: built-in maze)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidemaze/internal/config"
	"github.com/vovakirdan/slidemaze/internal/game"
	"github.com/vovakirdan/slidemaze/internal/maze"
)

var (
	// Global flags
	flagConfig string
	flagLayout string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidemaze",
	Short: "Slide Maze - cover every floor cell by sliding wall to wall",
	Long: `Slide Maze is a terminal puzzle. Your token slides in a straight line
until it hits a wall, painting every cell it crosses. Portals teleport
you to their partner and keep you moving. Cover the whole floor to win.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  show     - Print the parsed maze and its portals

Examples:
  slidemaze
  slidemaze play --sound
  slidemaze play --layout ./my-maze.txt
  slidemaze serve --ssh :2222
  slidemaze show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to a maze layout text file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
}

// loadLayout returns the layout text from --layout or the built-in maze.
func loadLayout() (string, error) {
	if flagLayout == "" {
		return maze.Classic, nil
	}
	data, err := os.ReadFile(flagLayout)
	if err != nil {
		return "", fmt.Errorf("failed to read layout %s: %w", flagLayout, err)
	}
	return string(data), nil
}

// loadConfig loads the config and logs every value that had to be adjusted.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, notes, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	for _, n := range notes {
		logger.Warn("config", "note", n)
	}
	return cfg, nil
}

// gameOptions maps the config onto game tuning.
func gameOptions(cfg config.Config) game.Options {
	opts := game.DefaultOptions()
	opts.Maze.Speed = cfg.Player.Speed
	opts.Maze.Celebration = cfg.Celebration.Duration
	opts.Particles = cfg.Confetti.Particles
	return opts
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// openLogFile opens the log file for append, creating its directory.
// An empty path discards logs.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
