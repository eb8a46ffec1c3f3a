package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("jumper", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("jumper"); high != 12 {
		t.Errorf("HighScore() after reopen = %d, expected 12", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openStore(t)

	for _, s := range []int{10, 50, 5, 30, 20} {
		if _, err := store.SaveScore("jumper", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 99)

	scores, err := store.TopScores("jumper", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 30 || scores[2].Score != 20 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, e := range scores {
		if e.GameID != "jumper" {
			t.Errorf("TopScores returned a score for %q", e.GameID)
		}
	}

	all, err := store.AllScores("jumper")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("jumper", 7)
	store.SaveScore("jumper", 31)
	store.SaveScore("jumper", 18)

	if high, _ = store.HighScore("jumper"); high != 31 {
		t.Errorf("Expected high score of 31, got %d", high)
	}

	stats, err := store.GetGameStats("jumper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 31 || stats.AvgScore != 56.0/3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openStore(t)

	id, err := store.SaveRun(RunRecord{GameID: "jumper", Outcome: "fell", Steps: 4, RoadLength: 50, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a UUID: %v", id, err)
	}

	fixed := uuid.NewString()
	if got, err := store.SaveRun(RunRecord{RunID: fixed, GameID: "jumper", Outcome: "finished", Steps: 50, RoadLength: 50}); err != nil || got != fixed {
		t.Errorf("SaveRun(fixed id) = %q, %v", got, err)
	}

	if _, err := store.SaveRun(RunRecord{RunID: fixed, GameID: "jumper", Outcome: "fell"}); err == nil {
		t.Error("duplicate run id should fail")
	}
	if _, err := store.SaveRun(RunRecord{RunID: "not-a-uuid", GameID: "jumper"}); err == nil {
		t.Error("malformed run id should fail")
	}

	runs, err := store.RecentRuns("jumper", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != fixed || runs[0].Outcome != "finished" {
		t.Errorf("newest run = %+v", runs[0])
	}
	if runs[1].Steps != 4 || runs[1].Seed != 42 || runs[1].RoadLength != 50 {
		t.Errorf("oldest run = %+v", runs[1])
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "jumper", Outcome: "fell", Steps: i})
	}

	runs, _ := store.RecentRuns("jumper", 3)
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Steps != 4 || runs[2].Steps != 2 {
		t.Errorf("runs not newest first: %+v", runs)
	}
}

func TestStoreOutcomeCounts(t *testing.T) {
	store := openStore(t)

	for _, o := range []string{"fell", "fell", "overshot", "fell", "stopped"} {
		store.SaveRun(RunRecord{GameID: "jumper", Outcome: o})
	}
	store.SaveRun(RunRecord{GameID: "other", Outcome: "finished"})

	counts, err := store.OutcomeCounts("jumper")
	if err != nil {
		t.Fatalf("OutcomeCounts() failed: %v", err)
	}

	want := map[string]int{"fell": 3, "overshot": 1, "stopped": 1}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, expected %v", counts, want)
	}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("counts[%q] = %d, expected %d", k, counts[k], v)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore("jumper", 10)
	store.SaveScore("other", 30)
	store.SaveRun(RunRecord{GameID: "jumper", Outcome: "fell"})

	if err := store.ClearScores("jumper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("jumper", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("jumper", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected by clearing jumper")
	}
}

func TestNilStore(t *testing.T) {
	var store *Store

	if _, err := store.SaveScore("jumper", 1); !errors.Is(err, ErrNilStore) {
		t.Errorf("SaveScore() on nil store = %v", err)
	}
	if _, err := store.SaveRun(RunRecord{}); !errors.Is(err, ErrNilStore) {
		t.Errorf("SaveRun() on nil store = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() on nil store = %v", err)
	}
}
