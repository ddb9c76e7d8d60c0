package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var (
	flagConfigOutput string
	flagConfigForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the game configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write the built-in default configuration to a file, ready for editing.

By default the file goes to ~/.frogger/config.yaml, where the game picks it
up automatically. An existing file is left alone unless --force is given.

Examples:
  frogger config init
  frogger config init --output ./my-frogger.yaml
  frogger config init --force`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigOutput, "output", "", "Destination path (default: ~/.frogger/config.yaml)")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := flagConfigOutput
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot get home directory: %v\n", err)
			os.Exit(1)
		}
		path = filepath.Join(home, ".frogger", "config.yaml")
	}

	if !flagConfigForce {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, config.DefaultFroggerYAML(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config to %s\n", path)
}
