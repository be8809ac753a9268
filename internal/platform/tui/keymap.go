package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/input"
)

// teaKey converts a config key name to the string Bubble Tea reports.
func teaKey(name string) string {
	if strings.EqualFold(name, "space") {
		return " "
	}
	return name
}

// helpKey is the inverse of teaKey, for display.
func helpKey(name string) string {
	if name == " " {
		return "space"
	}
	return name
}

// SeatKeys maps terminal key names to one seat's game keys.
type SeatKeys map[string]input.Key

// NewSeatKeys builds a seat map from config bindings.
func NewSeatKeys(b config.Bindings) (SeatKeys, error) {
	keys := make(SeatKeys)
	for name, terms := range b {
		k, err := input.ParseKey(name)
		if err != nil {
			return nil, err
		}
		for _, t := range terms {
			keys[teaKey(t)] = k
		}
	}
	return keys, nil
}

// Lookup returns the game key bound to a key message.
func (s SeatKeys) Lookup(msg tea.KeyMsg) (input.Key, bool) {
	k, ok := s[msg.String()]
	return k, ok
}

// Press records msg in held if it is one of the seat's keys. Keys that fire
// once per press are latched.
func (s SeatKeys) Press(held *HeldKeys, msg tea.KeyMsg, now time.Time) bool {
	k, ok := s.Lookup(msg)
	if !ok {
		return false
	}
	if k.Repeats() {
		held.Press(msg.String(), now)
	} else {
		held.Latch(msg.String(), now)
	}
	return true
}

// State returns the seat's key state as seen through held.
func (s SeatKeys) State(held *HeldKeys, now time.Time) input.KeySet {
	set := make(input.KeySet, len(s))
	for name, k := range s {
		if held.Held(name, now) {
			set[k] = true
		}
	}
	return set
}

// Describe lists the bindings as "key:action" pairs in key order.
func (s SeatKeys) Describe() string {
	names := make(map[input.Key][]string)
	for name, k := range s {
		names[k] = append(names[k], helpKey(name))
	}
	parts := make([]string, 0, len(names))
	for _, k := range input.Keys() {
		if n := names[k]; len(n) > 0 {
			slices.Sort(n)
			parts = append(parts, fmt.Sprintf("%s:%s", n[0], k))
		}
	}
	return strings.Join(parts, " ")
}

// GlobalKeyMap holds the session-wide bindings.
type GlobalKeyMap struct {
	Pause   key.Binding
	Ghost   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func binding(keys []string, desc string) key.Binding {
	tk := make([]string, len(keys))
	hk := make([]string, len(keys))
	for i, k := range keys {
		tk[i] = teaKey(k)
		hk[i] = helpKey(tk[i])
	}
	return key.NewBinding(
		key.WithKeys(tk...),
		key.WithHelp(strings.Join(hk, "/"), desc),
	)
}

// NewGlobalKeyMap builds the global bindings from config.
func NewGlobalKeyMap(g config.GlobalBindings) GlobalKeyMap {
	return GlobalKeyMap{
		Pause:   binding(g.Pause, "pause"),
		Ghost:   binding(g.Ghost, "ghost"),
		Restart: binding(g.Restart, "restart"),
		Back:    binding(g.Back, "menu"),
		Quit:    binding(g.Quit, "quit"),
	}
}

// Action maps a key message to a global action.
func (k GlobalKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Ghost):
		return core.ActionGhost
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Ghost, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuAction maps a key message to menu navigation. Menu keys are fixed.
func MenuAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k":
		return core.ActionUp
	case "s", "down", "j":
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	case "tab":
		return core.ActionScores
	}
	return core.ActionNone
}
