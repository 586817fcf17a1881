package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresAll    bool
	flagScoresRun    string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and stats",
	Long: `Display the top runs for the specified mode.
Without a mode, prints a stats summary for every mode played so far.

Examples:
  blockfall scores
  blockfall scores blockfall
  blockfall scores blockfall_bag --limit 20
  blockfall scores blockfall --all
  blockfall scores --player alice
  blockfall scores --run 6f1c...e2
  blockfall scores blockfall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show runs of one player across all modes")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run of the mode")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one run by its id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := os.Stdout
	switch {
	case flagScoresRun != "":
		err = printRun(out, store, flagScoresRun)
	case flagScoresClear:
		if len(args) == 0 {
			err = errors.New("--clear needs a mode")
			break
		}
		err = clearScores(out, store, args[0])
	case flagScoresPlayer != "":
		err = printPlayerScores(out, store, flagScoresPlayer, flagScoresLimit)
	case len(args) == 0:
		err = printAllStats(out, store)
	default:
		limit := flagScoresLimit
		if flagScoresAll {
			limit = 0
		}
		err = printGameScores(out, store, args[0], limit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// modeTitle returns the display title of a registered mode.
func modeTitle(gameID string) (string, error) {
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q (run 'blockfall list' to see available modes)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return "", fmt.Errorf("creating game: %w", err)
	}
	return game.Title(), nil
}

// printGameScores prints the best runs of a mode. A limit of 0 prints every run.
func printGameScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	title, err := modeTitle(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if limit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'blockfall play %s' to set the first high score!\n", gameID)
		return nil
	}

	printRuns(w, scores, false)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Avg: %.0f  Games: %d  Lines: %d  Played: %s\n",
		stats.HighScore, stats.AvgScore, stats.GamesCount, stats.TotalLines, formatPlayTime(stats.TotalTime))
	return nil
}

func printPlayerScores(w io.Writer, store *storage.Store, player string, limit int) error {
	scores, err := store.PlayerScores(player, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "Runs - %s\n\n", player)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}
	printRuns(w, scores, true)
	return nil
}

// printRun prints the details of one run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	player := run.Player
	if player == "" {
		player = "-"
	}
	fmt.Fprintf(w, "Run    %s\n", run.RunID)
	fmt.Fprintf(w, "Mode   %s\n", run.GameID)
	fmt.Fprintf(w, "Player %s\n", player)
	fmt.Fprintf(w, "Score  %d\n", run.Score)
	fmt.Fprintf(w, "Level  %d\n", run.Level)
	fmt.Fprintf(w, "Lines  %d\n", run.Lines)
	fmt.Fprintf(w, "Time   %s\n", formatPlayTime(run.Duration))
	fmt.Fprintf(w, "Date   %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// clearScores deletes every run of a mode.
func clearScores(w io.Writer, store *storage.Store, gameID string) error {
	title, err := modeTitle(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all runs of %s.\n", title)
	return nil
}

func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-14s  %-6s  %-8s  %-8s  %-5s  %-6s  %-9s  %s\n",
		"Mode", "Games", "Best", "Avg", "Level", "Lines", "Played", "Last")
	fmt.Fprintf(w, "  %-14s  %-6s  %-8s  %-8s  %-5s  %-6s  %-9s  %s\n",
		"----", "-----", "----", "---", "-----", "-----", "------", "----")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(w, "  %-14s  %-6d  %-8d  %-8.0f  %-5d  %-6d  %-9s  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel, st.TotalLines,
			formatPlayTime(st.TotalTime), st.LastPlayed.Local().Format("2006-01-02"))
	}
	return nil
}

func printRuns(w io.Writer, scores []storage.ScoreEntry, withMode bool) {
	header := fmt.Sprintf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-8s  %s", "Rank", "Player", "Score", "Level", "Lines", "Time", "Date")
	rule := fmt.Sprintf("  %-4s  %-12s  %-8s  %-5s  %-5s  %-8s  %s", "----", "------", "-----", "-----", "-----", "----", "----")
	if withMode {
		header += "  Mode"
		rule += "  ----"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		line := fmt.Sprintf("  %-4d  %-12s  %-8d  %-5d  %-5d  %-8s  %s",
			i+1, player, entry.Score, entry.Level, entry.Lines,
			formatPlayTime(entry.Duration), entry.CreatedAt.Local().Format("2006-01-02 15:04"))
		if withMode {
			line += "  " + entry.GameID
		}
		fmt.Fprintln(w, line)
	}
}

// formatPlayTime renders a duration truncated to whole seconds, like 1m15s.
func formatPlayTime(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
