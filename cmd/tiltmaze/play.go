package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkraev/tiltmaze/internal/core"
	"github.com/mkraev/tiltmaze/internal/game"
	"github.com/mkraev/tiltmaze/internal/platform/tui"
	"github.com/mkraev/tiltmaze/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a labyrinth session.

Controls:
  A/Left     - Tilt counter-clockwise
  D/Right    - Tilt clockwise
  P/Esc      - Pause
  R          - Restart the session
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wide corridors, sparse walls, big exit
  normal - Balanced starting point
  hard   - Dense walls, decoys, narrow exit
  fixed  - Normal parameters, adaptation disabled

Examples:
  tiltmaze play
  tiltmaze play --difficulty easy
  tiltmaze play --config ./my-maze.yaml --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		game.SetPreset(flagDifficulty)
	}

	g, err := registry.Create("tiltmaze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(g, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
