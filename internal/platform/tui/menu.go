package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/storage"
)

// MenuChoice is what the player picked from the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceSolo
	ChoiceVersus
	ChoiceScores
	ChoiceQuit
)

// Mode returns the session mode for a play choice.
func (c MenuChoice) Mode() (multiplayer.Mode, bool) {
	switch c {
	case ChoiceSolo:
		return multiplayer.ModeSolo, true
	case ChoiceVersus:
		return multiplayer.ModeVersus, true
	}
	return 0, false
}

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Hint   string
}

var menuItems = []MenuItem{
	{ChoiceSolo, "Solo", "one field, chase the high score"},
	{ChoiceVersus, "Versus", "two players, one keyboard"},
	{ChoiceScores, "High Scores", "solo, versus and recent matches"},
	{ChoiceQuit, "Quit", ""},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	best     map[multiplayer.Mode]int
	config   core.RuntimeConfig
	selected MenuChoice
}

// NewMenuModel creates a new menu model. The best scores shown next to the
// play entries are read from store when it is set.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[multiplayer.Mode]int)
	if store != nil {
		for _, mode := range []multiplayer.Mode{multiplayer.ModeSolo, multiplayer.ModeVersus} {
			if score, err := store.HighScore(mode.String()); err == nil {
				best[mode] = score
			}
		}
	}

	return MenuModel{
		items:  menuItems,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		best:   best,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MenuAction(msg) {
	case core.ActionQuit:
		m.selected = ChoiceQuit
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		m.selected = m.items[m.cursor].Choice
		return m, tea.Quit

	case core.ActionScores:
		m.selected = ChoiceScores
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected == ChoiceQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S   D U E L"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		if mode, ok := item.Choice.Mode(); ok && m.best[mode] > 0 {
			line += menuHintStyle.Render(fmt.Sprintf("  best %d", m.best[mode]))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if hint := m.items[m.cursor].Hint; hint != "" {
		b.WriteString(centerText(menuHintStyle.Render(hint), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the player's choice, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
