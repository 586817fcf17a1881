package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: blockfall).

Controls:
  Left/Right/A/D  - Shift piece (hold to repeat)
  Down/S          - Soft drop (hold)
  Up/X/W          - Rotate clockwise
  Z               - Rotate counterclockwise
  Space           - Hard drop
  Enter           - Start / retry
  P/Esc           - Pause
  R               - Retry (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - Gravity 25% slower
  normal  - Config gravity
  hard    - Gravity 20% faster

Examples:
  blockfall play
  blockfall play blockfall_bag
  blockfall play --difficulty hard --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for saved runs (default: $USER)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := blockfall.IDMarathon
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := newTUILogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Set config path and difficulty before creation
	if err := configureGames(logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if flagPlayer != "" {
		opts = append(opts, tui.WithPlayer(flagPlayer))
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
