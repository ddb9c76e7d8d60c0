// frogger is a terminal Frogger-style arcade game.
//
// Usage:
//
//	frogger play             - Play the game
//	frogger serve            - Start SSH server for remote play
//	frogger scores           - Show high scores
//	frogger config init      - Write a starter config file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.frogger/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road, ride the logs",
	Long: `Frogger is a terminal arcade game. Hop your frog from the bottom of
the screen across a busy road and a log-filled river into the goal
slots at the top. Fill every slot to win.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Manage the game configuration

Examples:
  frogger play
  frogger play --difficulty hard
  frogger serve --ssh :2222
  frogger scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
