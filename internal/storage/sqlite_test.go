package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreHighScoreKey(t *testing.T) {
	store := openTestStore(t)

	v, err := store.ReadHighScore("flappyModiHighScore")
	if err != nil {
		t.Fatalf("ReadHighScore() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("ReadHighScore() = %d, expected 0 for a missing key", v)
	}

	if err := store.WriteHighScore("flappyModiHighScore", 7); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}
	if err := store.WriteHighScore("flappyModiHighScore", 12); err != nil {
		t.Fatalf("WriteHighScore() overwrite failed: %v", err)
	}
	if err := store.WriteHighScore("other", 99); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}

	v, _ = store.ReadHighScore("flappyModiHighScore")
	if v != 12 {
		t.Errorf("ReadHighScore() = %d, expected 12", v)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.WriteHighScore("best", 31)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _ := store.ReadHighScore("best"); v != 31 {
		t.Errorf("ReadHighScore() after reopen = %d, expected 31", v)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("normal", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("hard", 500)

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.Board != "normal" {
			t.Errorf("scores[%d].Board = %q, expected normal", i, e.Board)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, _ := store.TopScores("test", 0)
	if len(all) != 5 {
		t.Errorf("default limit returned %d rows, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore("normal", 100)
	store.SaveScore("normal", 300)
	store.SaveScore("normal", 200)

	high, _ = store.HighScore("normal")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("normal", 100)
	store.WriteHighScore("normal", 100)
	store.SaveScore("hard", 300)
	store.WriteHighScore("hard", 300)

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("normal", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if v, _ := store.ReadHighScore("normal"); v != 0 {
		t.Errorf("high score after clear = %d, expected 0", v)
	}

	if scores, _ := store.TopScores("hard", 10); len(scores) != 1 {
		t.Error("hard board should not be affected by clearing normal")
	}
	if v, _ := store.ReadHighScore("hard"); v != 300 {
		t.Errorf("hard high score = %d, expected 300", v)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{2, 4, 9} {
		store.SaveScore("normal", s)
	}
	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.TotalScore != 15 || stats.AvgScore != 5 {
		t.Errorf("stats = %+v, expected 3 games, best 9, total 15, avg 5", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not parsed")
	}
}

func TestKeyedScores(t *testing.T) {
	store := openTestStore(t)
	k := store.Keyed("flappyModiHighScore")

	if v, err := k.ReadHighScore(); err != nil || v != 0 {
		t.Fatalf("ReadHighScore() = %d, %v; expected 0, nil", v, err)
	}
	if err := k.WriteHighScore(8); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}
	if err := k.RecordSession(8); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	if v, _ := store.ReadHighScore("flappyModiHighScore"); v != 8 {
		t.Errorf("stored high score = %d, expected 8", v)
	}
	if high, _ := store.HighScore("flappyModiHighScore"); high != 8 {
		t.Errorf("history best = %d, expected 8", high)
	}
}

func TestStoreClosedErrors(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := store.ReadHighScore("x"); err == nil {
		t.Error("expected an error reading from a closed store")
	}
	if err := store.WriteHighScore("x", 1); err == nil {
		t.Error("expected an error writing to a closed store")
	}
}
