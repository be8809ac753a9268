package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
)

func newTestGame(t *testing.T, mode multiplayer.Mode) GameModel {
	t.Helper()
	m, err := NewGameModel(GameOptions{
		Mode:    mode,
		Config:  config.DefaultTetrisConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelMovesHeldKey(t *testing.T) {
	m := newTestGame(t, multiplayer.ModeSolo)
	before := m.Session().Snapshot(multiplayer.Player1).Current

	m, _ = update(t, m, runeKey('a'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	after := m.Session().Snapshot(multiplayer.Player1).Current
	if after.X != before.X-1 {
		t.Errorf("piece X = %d, want %d", after.X, before.X-1)
	}
}

func TestGameModelPauseAndBack(t *testing.T) {
	m := newTestGame(t, multiplayer.ModeSolo)

	// Back is ignored while the game is running.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should need pause or game over")
	}

	m, _ = update(t, m, runeKey('p'))
	if !m.Session().Paused() {
		t.Fatal("p should pause")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
	if cmd != nil {
		t.Error("embedded game should not quit the program on back")
	}
	if m.Session().Running() {
		t.Error("session should be reset for the menu")
	}
}

func TestGameModelGhostToggle(t *testing.T) {
	m := newTestGame(t, multiplayer.ModeVersus)
	m, _ = update(t, m, runeKey('g'))
	for _, p := range []multiplayer.PlayerID{multiplayer.Player1, multiplayer.Player2} {
		if m.Session().Snapshot(p).Ghost {
			t.Errorf("%s ghost still on", p)
		}
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGame(t, multiplayer.ModeSolo)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGame(t, multiplayer.ModeSolo)
	if !strings.Contains(m.View(), "SOLO") {
		t.Error("view should show the mode title")
	}
}

func TestNewGameModelRejectsBadBindings(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Keys.Player2 = config.Bindings{"teleport": {"t"}}
	_, err := NewGameModel(GameOptions{Mode: multiplayer.ModeVersus, Config: cfg})
	if err == nil {
		t.Error("expected error for unknown binding")
	}
}
