// tiltmaze is a terminal game: steer a ball out of a rotating circular
// labyrinth by tilting it. Every escape regenerates the maze with
// parameters adapted to how you played.
//
// Usage:
//
//	tiltmaze play            - Play in the terminal
//	tiltmaze gen             - Generate mazes and print diagnostics
//	tiltmaze list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Platform frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible sessions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltmaze",
	Short: "Tilt Maze - escape a rotating labyrinth in your terminal",
	Long: `Tilt Maze drops a ball into the center of a circular labyrinth.
Tilt the maze left and right; gravity does the rest. Find the gap in
the outer rim to escape. Each escaped labyrinth is replaced by a new
one, tuned to how the previous attempt went.

Examples:
  tiltmaze play
  tiltmaze play --difficulty hard
  tiltmaze play --seed 42
  tiltmaze gen --seed 7 --count 5`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Platform frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(listCmd)
}
