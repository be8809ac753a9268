package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-duel/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardTabs(t *testing.T) {
	store := openScoreStore(t)
	store.SaveScore(storage.ScoreEntry{Mode: "solo", Player: "P1", Score: 1234, Level: 3, Lines: 25})
	store.SaveMatch(storage.MatchEntry{MatchID: "m1", Score1: 40, Score2: 40, Ticks: 99})

	m := NewScoreboardModel(store, "solo", 100, 30)
	if m.Tab() != "solo" {
		t.Fatalf("Tab() = %q, want solo", m.Tab())
	}
	if !strings.Contains(m.View(), "1234") {
		t.Error("solo tab should list the saved score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != "versus" {
		t.Errorf("after tab: %q, want versus", m.Tab())
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty versus tab should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != "matches" {
		t.Errorf("after second tab: %q, want matches", m.Tab())
	}
	if !strings.Contains(m.View(), "draw") {
		t.Error("matches tab should show the drawn match")
	}

	// Wraps around backwards from the first tab.
	m = NewScoreboardModel(store, "solo", 100, 30)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Tab() != "matches" {
		t.Errorf("shift+tab from solo: %q, want matches", m.Tab())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "versus", 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("nil store should be reported")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := next.(ScoreboardModel)
	if !sb.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardUnknownTabFallsBack(t *testing.T) {
	m := NewScoreboardModel(nil, "marathon", 80, 24)
	if m.Tab() != "solo" {
		t.Errorf("Tab() = %q, want solo", m.Tab())
	}
}
