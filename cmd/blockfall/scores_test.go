package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedRuns(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		run := storage.Run{GameID: gameID, Player: "alice", Score: score, Level: 2, Lines: 12, Duration: 90 * time.Second}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
}

func TestPrintGameScoresLimit(t *testing.T) {
	store := openTestStore(t)
	seedRuns(t, store, blockfall.IDMarathon, 100, 300, 200)

	var limited bytes.Buffer
	if err := printGameScores(&limited, store, blockfall.IDMarathon, 2); err != nil {
		t.Fatalf("printGameScores() failed: %v", err)
	}
	if strings.Contains(limited.String(), "  100  ") {
		t.Errorf("limit 2 should hide the lowest run:\n%s", limited.String())
	}

	var all bytes.Buffer
	if err := printGameScores(&all, store, blockfall.IDMarathon, 0); err != nil {
		t.Fatalf("printGameScores() failed: %v", err)
	}
	for _, want := range []string{"High Scores - Blockfall", "300", "200", "100", "Games: 3"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("output missing %q:\n%s", want, all.String())
		}
	}
}

func TestPrintGameScoresUnknownMode(t *testing.T) {
	store := openTestStore(t)
	var out bytes.Buffer
	if err := printGameScores(&out, store, "no_such_mode", 10); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestPrintRun(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRun(storage.Run{GameID: blockfall.IDBag, Player: "bob", Score: 4200, Level: 3, Lines: 27, Duration: 75 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	scores, err := store.TopScores(blockfall.IDBag, 1)
	if err != nil || len(scores) != 1 || scores[0].ID != id {
		t.Fatalf("TopScores() = %+v, %v", scores, err)
	}

	var out bytes.Buffer
	if err := printRun(&out, store, scores[0].RunID); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	for _, want := range []string{scores[0].RunID, "bob", "4200", "27", "1m15s"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	if err := printRun(&out, store, "missing-run"); err == nil {
		t.Error("expected error for unknown run id")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	seedRuns(t, store, blockfall.IDMarathon, 100, 200)
	seedRuns(t, store, blockfall.IDBag, 300)

	var out bytes.Buffer
	if err := clearScores(&out, store, blockfall.IDMarathon); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared") {
		t.Errorf("output = %q", out.String())
	}

	if best, _ := store.HighScore(blockfall.IDMarathon); best != 0 {
		t.Errorf("HighScore after clear = %d, expected 0", best)
	}
	if best, _ := store.HighScore(blockfall.IDBag); best != 300 {
		t.Errorf("other mode HighScore = %d, expected 300", best)
	}

	if err := clearScores(&out, store, "no_such_mode"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestPrintAllStats(t *testing.T) {
	store := openTestStore(t)

	var empty bytes.Buffer
	if err := printAllStats(&empty, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No runs recorded yet") {
		t.Errorf("output = %q", empty.String())
	}

	seedRuns(t, store, blockfall.IDMarathon, 500)
	seedRuns(t, store, blockfall.IDBag, 700)

	var out bytes.Buffer
	if err := printAllStats(&out, store); err != nil {
		t.Fatalf("printAllStats() failed: %v", err)
	}
	s := out.String()
	if strings.Index(s, blockfall.IDMarathon+" ") > strings.Index(s, blockfall.IDBag) {
		t.Errorf("modes should be sorted by id:\n%s", s)
	}
}
