package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slidemaze/internal/config"
	"github.com/vovakirdan/slidemaze/internal/maze"
)

var flagConfigDefault bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the parsed maze and its portals",
	Long: `Parse the layout and print it back with its portal links and any
warnings. Useful when writing a new layout.

With --config-default, print the built-in configuration file instead,
ready to be saved as ~/.slidemaze/config.yaml and edited.

Examples:
  slidemaze show
  slidemaze show --layout ./my-maze.txt
  slidemaze show --config-default > ~/.slidemaze/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagConfigDefault, "config-default", false, "Print the default config YAML and exit")
}

func runShow(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	text, err := loadLayout()
	if err != nil {
		return err
	}
	l := maze.Parse(text)

	fmt.Printf("Maze %dx%d, start %v\n\n", l.Grid.Width(), l.Grid.Height(), l.Start)
	fmt.Println(l.Grid.String())
	fmt.Println()

	ids := l.Portals.IDs()
	if len(ids) == 0 {
		fmt.Println("No portals.")
	}
	for _, id := range ids {
		fmt.Printf("Portal %c:\n", id)
		for _, pos := range l.Portals.Group(id) {
			if to, ok := l.Portals.Partner(id, pos); ok {
				fmt.Printf("  %v -> %v\n", pos, to)
			} else {
				fmt.Printf("  %v (dead end)\n", pos)
			}
		}
	}

	if len(l.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, w := range l.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	return nil
}
