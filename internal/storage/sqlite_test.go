package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// saveScore stores a run that only carries a score.
func saveScore(store *Store, gameID string, score int) (int64, error) {
	return store.SaveRun(Run{GameID: gameID, Score: score})
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = saveScore(store, "blockfall", 100)
	if err != nil {
		t.Fatalf("saveScore() failed: %v", err)
	}

	_, err = saveScore(store, "blockfall", 50)
	if err != nil {
		t.Fatalf("saveScore() failed: %v", err)
	}

	_, err = saveScore(store, "blockfall", 200)
	if err != nil {
		t.Fatalf("saveScore() failed: %v", err)
	}

	// Different game
	_, err = saveScore(store, "blockfall_bag", 500)
	if err != nil {
		t.Fatalf("saveScore() failed: %v", err)
	}

	// Retrieve top scores for marathon
	scores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for bag
	bagScores, err := store.TopScores("blockfall_bag", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(bagScores) != 1 {
		t.Errorf("Expected 1 bag score, got %d", len(bagScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		saveScore(store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	saveScore(store, "blockfall", 100)
	saveScore(store, "blockfall", 300)
	saveScore(store, "blockfall", 200)

	high, err = store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScore(store, "blockfall", 100)
	saveScore(store, "blockfall", 200)
	saveScore(store, "blockfall_bag", 300)

	// Clear only marathon scores
	err = store.ClearScores("blockfall")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Marathon should be empty
	marathonScores, _ := store.TopScores("blockfall", 10)
	if len(marathonScores) != 0 {
		t.Errorf("Expected 0 marathon scores after clear, got %d", len(marathonScores))
	}

	// Bag should still have scores
	bagScores, _ := store.TopScores("blockfall_bag", 10)
	if len(bagScores) != 1 {
		t.Errorf("Bag scores should not be affected by clearing marathon")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		saveScore(store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	run := Run{
		GameID:   "blockfall",
		Player:   "alice",
		Score:    4200,
		Level:    3,
		Lines:    27,
		Duration: 95 * time.Second,
	}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("blockfall", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}

	got := scores[0]
	if _, err := uuid.Parse(got.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", got.RunID, err)
	}
	if got.Player != "alice" || got.Score != 4200 || got.Level != 3 || got.Lines != 27 {
		t.Errorf("Run fields not preserved: %+v", got)
	}
	if got.Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 1m35s", got.Duration)
	}

	byID, err := store.RunByID(got.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if byID == nil || byID.ID != got.ID {
		t.Errorf("RunByID() = %+v, expected row %d", byID, got.ID)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID() for unknown id = %+v, expected nil", missing)
	}
}

func TestStoreSaveRunDuplicateID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id := uuid.NewString()
	if _, err := store.SaveRun(Run{ID: id, GameID: "blockfall", Score: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{ID: id, GameID: "blockfall", Score: 2}); err == nil {
		t.Error("SaveRun() with a duplicate run ID should fail")
	}
}

func TestStorePlayerScores(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GameID: "blockfall", Player: "alice", Score: 100})
	store.SaveRun(Run{GameID: "blockfall_bag", Player: "alice", Score: 300})
	store.SaveRun(Run{GameID: "blockfall", Player: "bob", Score: 900})

	scores, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[0].GameID != "blockfall_bag" {
		t.Errorf("Expected best alice run first, got %+v", scores[0])
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "blockfall", Score: 100, Level: 1, Lines: 4, Duration: time.Minute})
	store.SaveRun(Run{GameID: "blockfall", Score: 300, Level: 2, Lines: 12, Duration: 2 * time.Minute})
	store.SaveRun(Run{GameID: "blockfall_bag", Score: 50, Level: 1, Lines: 1})

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.BestLevel != 2 || stats.MostLines != 12 || stats.TotalLines != 16 {
		t.Errorf("Level/lines stats wrong: %+v", stats)
	}
	if stats.TotalTime != 3*time.Minute {
		t.Errorf("TotalTime = %v, expected 3m0s", stats.TotalTime)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["blockfall_bag"].HighScore != 50 {
		t.Errorf("blockfall_bag HighScore = %d, expected 50", all["blockfall_bag"].HighScore)
	}
}
