package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestSeatKeysLookup(t *testing.T) {
	keys, err := NewSeatKeys(config.Bindings{
		"left":      {"a", "left"},
		"hard_drop": {"space"},
	})
	if err != nil {
		t.Fatalf("NewSeatKeys() failed: %v", err)
	}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{"rune", runeKey('a'), input.KeyLeft, true},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft, true},
		{"space", spaceKey, input.KeyHardDrop, true},
		{"unbound", runeKey('x'), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Lookup(tt.msg)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Lookup() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSeatKeysRejectsUnknownAction(t *testing.T) {
	if _, err := NewSeatKeys(config.Bindings{"hold": {"c"}}); err == nil {
		t.Error("expected error for unknown key name")
	}
}

func TestSeatKeysState(t *testing.T) {
	keys, err := NewSeatKeys(config.Bindings{"left": {"a", "left"}, "right": {"d"}})
	if err != nil {
		t.Fatalf("NewSeatKeys() failed: %v", err)
	}
	t0 := time.Unix(0, 0)
	held := NewHeldKeys(100*time.Millisecond, 0)
	held.Press("left", t0)

	state := keys.State(held, t0.Add(50*time.Millisecond))
	if !state.Held(input.KeyLeft) {
		t.Error("left should be held via its arrow binding")
	}
	if state.Held(input.KeyRight) {
		t.Error("right should not be held")
	}

	state = keys.State(held, t0.Add(200*time.Millisecond))
	if state.Held(input.KeyLeft) {
		t.Error("left should be released after the window")
	}
}

func TestSeatKeysDescribe(t *testing.T) {
	keys, _ := NewSeatKeys(config.Bindings{"right": {"d"}, "left": {"a"}, "hard_drop": {"space"}})
	if got, want := keys.Describe(), "a:left d:right space:hard_drop"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestGlobalKeyMapAction(t *testing.T) {
	km := NewGlobalKeyMap(config.DefaultTetrisConfig().Keys.Global)

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('p'), core.ActionPause},
		{runeKey('g'), core.ActionGhost},
		{runeKey('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('a'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('j'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{spaceKey, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores},
		{runeKey('q'), core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
