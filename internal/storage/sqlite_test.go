package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300} {
		if _, err := store.SaveScore(score, false); err != nil {
			t.Fatalf("SaveScore(%d): %v", score, err)
		}
	}

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 300 {
		t.Errorf("scores not ordered descending: %d, %d", scores[0].Score, scores[1].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, want 0", high)
	}

	store.SaveScore(200, false)
	store.SaveScore(400, true)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 400 {
		t.Errorf("high score = %d, want 400", high)
	}
}

func TestWonFlagPersists(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(500, true)
	store.SaveScore(100, false)

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if !scores[0].Won {
		t.Error("winning round not marked won")
	}
	if scores[1].Won {
		t.Error("losing round marked won")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, false)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, false)
	store.SaveScore(500, true)
	store.SaveScore(300, false)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, want 3", stats.GamesCount)
	}
	if stats.WinsCount != 1 {
		t.Errorf("wins count = %d, want 1", stats.WinsCount)
	}
	if stats.HighScore != 500 {
		t.Errorf("high score = %d, want 500", stats.HighScore)
	}
	if stats.TotalScore != 900 {
		t.Errorf("total score = %d, want 900", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	store, err := Open("~/.frogger/scores.db")
	if err != nil {
		t.Fatalf("Open with ~ path: %v", err)
	}
	store.Close()
}
