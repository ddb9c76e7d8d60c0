package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round.

Controls:
  Arrows/WASD - Hop
  P           - Pause
  R/Enter     - Restart (after the round ends)
  Q/Esc       - Quit

Difficulty presets:
  easy   - 5 lives, slower traffic
  normal - 3 lives, standard traffic
  hard   - 2 lives, faster traffic

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --config ./my-frogger.yaml
  frogger play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	switch config.DifficultyPreset(flagDifficulty) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, or hard)\n", flagDifficulty)
		os.Exit(1)
	}

	// Surface config problems before entering the alt screen
	if _, err := config.LoadFrogger(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frogger.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		frogger.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(frogger.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
