package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{Mode: "solo", Player: "P1", Score: 100, Level: 1, Lines: 2},
		{Mode: "solo", Player: "P1", Score: 50, Level: 1, Lines: 1},
		{Mode: "solo", Player: "P1", Score: 1200, Level: 2, Lines: 14, Tetrises: 1},
		{Mode: "versus", Player: "P2", Score: 500, Level: 1, Lines: 5},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("solo", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{1200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Tetrises != 1 || scores[0].Lines != 14 || scores[0].Level != 2 {
		t.Errorf("top entry lost its counters: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	versus, err := store.TopScores("versus", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(versus) != 1 || versus[0].Player != "P2" {
		t.Errorf("versus scores = %+v", versus)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore(ScoreEntry{Mode: "solo", Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("solo", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("solo", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("solo")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty table, got %d", high)
	}

	store.SaveScore(ScoreEntry{Mode: "solo", Score: 300})
	store.SaveScore(ScoreEntry{Mode: "solo", Score: 700})
	store.SaveScore(ScoreEntry{Mode: "versus", Score: 9000})

	high, err = store.HighScore("solo")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Mode: "solo", Score: 100})
	store.SaveScore(ScoreEntry{Mode: "versus", Score: 200})

	if err := store.ClearScores("solo"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	solo, _ := store.TopScores("solo", 10)
	if len(solo) != 0 {
		t.Errorf("Expected 0 solo scores after clear, got %d", len(solo))
	}
	versus, _ := store.TopScores("versus", 10)
	if len(versus) != 1 {
		t.Errorf("Expected versus scores to survive, got %d", len(versus))
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchEntry{MatchID: "m1", Score1: 400, Score2: 100, Winner: "P1", Wins1: 1, Ticks: 900}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchEntry{MatchID: "m2", Score1: 80, Score2: 80, Ticks: 300}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	// match_id is unique
	if _, err := store.SaveMatch(MatchEntry{MatchID: "m1"}); err == nil {
		t.Error("Expected duplicate match ID to fail")
	}

	m, err := store.MatchByID("m1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil {
		t.Fatal("Expected match m1")
	}
	if m.Winner != "P1" || m.Score1 != 400 || m.Wins1 != 1 || m.Ticks != 900 {
		t.Errorf("unexpected match: %+v", m)
	}

	draw, err := store.MatchByID("m2")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if draw == nil || draw.Winner != "" {
		t.Errorf("Expected draw with empty winner, got %+v", draw)
	}

	missing, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown match, got %+v", missing)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(recent))
	}
	// Same-second inserts fall back to id order, newest first
	if recent[0].MatchID != "m2" {
		t.Errorf("Expected newest match first, got %s", recent[0].MatchID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ModeStats("solo")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	store.SaveScore(ScoreEntry{Mode: "solo", Score: 100, Lines: 3})
	store.SaveScore(ScoreEntry{Mode: "solo", Score: 300, Lines: 9, Tetrises: 1})

	stats, err := store.ModeStats("solo")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalLines != 12 || stats.TotalTetris != 1 {
		t.Errorf("totals = %d lines, %d tetrises", stats.TotalLines, stats.TotalTetris)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRecorder(t *testing.T) {
	store := openTestStore(t)

	var rec multiplayer.Recorder = store
	err := rec.SaveGameResult(multiplayer.GameRecord{
		MatchID:    "abc",
		Mode:       "versus",
		Player:     "P2",
		GameResult: tetris.GameResult{Score: 140, Level: 2, Lines: 11, Tetrises: 0, Pieces: 40},
	})
	if err != nil {
		t.Fatalf("SaveGameResult() failed: %v", err)
	}
	err = rec.SaveMatchResult(multiplayer.MatchRecord{
		MatchID: "abc", Score1: 20, Score2: 140, Winner: "P2", Wins2: 1, Ticks: 1234,
	})
	if err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	high, err := rec.HighScore("versus")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 140 {
		t.Errorf("HighScore = %d, want 140", high)
	}

	scores, _ := store.TopScores("versus", 1)
	if len(scores) != 1 || scores[0].MatchID != "abc" || scores[0].Pieces != 40 {
		t.Errorf("unexpected score rows: %+v", scores)
	}
	m, _ := store.MatchByID("abc")
	if m == nil || m.Winner != "P2" || m.Ticks != 1234 {
		t.Errorf("unexpected match row: %+v", m)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/scores/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "scores", "test.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}
