package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Load the game config the same way 'play' does, apply the difficulty
preset, validate it, and print the result as YAML.

Search order: --config, ~/.blockfall/configs/blockfall.yaml,
./configs/blockfall.yaml, then the built-in defaults.

Examples:
  blockfall config
  blockfall config --difficulty hard
  blockfall config --config ./my-blockfall.yaml > custom.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyBlockfallPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config from %s: %v\n", cfg.Source, err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n# difficulty: %s\n", cfg.Source, preset)
	os.Stdout.Write(data)
}
