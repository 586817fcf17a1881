// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available modes
//	blockfall play [mode]       - Play a mode (default: blockfall)
//	blockfall menu              - Start menu to pick modes interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores [mode]     - Show high scores and stats
//	blockfall config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--db <path>          - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file while the TUI is running
//
// BLOCKFALL_DB, BLOCKFALL_CONFIG and BLOCKFALL_LOG_LEVEL set flag defaults
// and may be placed in a .env file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game for your terminal",
	Long: `Blockfall drops pieces onto a 10x20 board. Fill rows to clear them,
chain spins and tetrises for back-to-back bonuses, and climb a level
every ten lines.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  config   - Print the effective game config

Examples:
  blockfall play
  blockfall play blockfall_bag --difficulty hard
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores blockfall`,
	SilenceUsage: true,
}

func init() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", getEnv("BLOCKFALL_DB", "~/.blockfall/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", getEnv("BLOCKFALL_CONFIG", ""), "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", getEnv("BLOCKFALL_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	}), nil
}

// newTUILogger returns a logger for commands that own the terminal. Logs go
// to --log-file when set and are discarded otherwise. The returned func
// closes the file.
func newTUILogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// configureGames passes the config flags and logger to the game package.
// It must run before games are created.
func configureGames(logger *log.Logger) error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	blockfall.SetLogger(logger)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
