package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
)

func newTestApp() AppModel {
	return NewAppModel(AppOptions{
		Config:  config.DefaultTetrisConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5},
		Logger:  log.New(io.Discard),
	})
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return app, cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestAppMenuToGameAndBack(t *testing.T) {
	m := newTestApp()

	m, cmd := send(t, m, enterKey)
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter on Solo should start a game")
	}
	if m.game.Session().Mode() != multiplayer.ModeSolo {
		t.Errorf("mode = %v, want solo", m.game.Session().Mode())
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, escKey)
	if m.screen != screenMenu {
		t.Fatal("esc on a paused game should return to the menu")
	}

	// The first game's tick is still in flight, so the next game reuses it.
	m, _ = send(t, m, downKey)
	m, cmd = send(t, m, enterKey)
	if m.screen != screenGame || m.game.Session().Mode() != multiplayer.ModeVersus {
		t.Fatal("second entry should start a versus game")
	}
	if cmd != nil {
		t.Error("a second tick loop must not be started")
	}

	_, cmd = send(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("the in-flight tick should continue the loop")
	}
}

func TestAppDropsStrayTickInMenu(t *testing.T) {
	m := newTestApp()
	m.ticking = true

	m, cmd := send(t, m, TickMsg(time.Now()))
	if cmd != nil || m.ticking {
		t.Error("menu should drop ticks and mark the loop stopped")
	}

	_, cmd = send(t, m, enterKey)
	if cmd == nil {
		t.Error("next game should start a fresh tick loop")
	}
}

func TestAppScoreboardRoundTrip(t *testing.T) {
	m := newTestApp()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = send(t, m, escKey)
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
	if m.menu.Selected() != ChoiceNone {
		t.Error("menu should be fresh after returning")
	}
}

func TestAppQuit(t *testing.T) {
	m := newTestApp()
	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q on the menu should quit")
	}
	if m.View() != "" {
		t.Error("quitting app should render nothing")
	}
}
