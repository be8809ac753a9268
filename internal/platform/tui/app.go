package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/storage"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Config  config.TetrisConfig
	Store   *storage.Store // optional
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for `duel menu` and for SSH sessions.
type AppModel struct {
	opts     AppOptions
	runtime  core.RuntimeConfig
	screen   appScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	ticking  bool // a TickMsg is in flight
	quitting bool
}

// NewAppModel creates the app on its main menu.
func NewAppModel(opts AppOptions) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return AppModel{
		opts:    opts,
		runtime: opts.Runtime,
		menu:    NewMenuModel(opts.Store, opts.Runtime),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.ticking = false
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	choice := m.menu.Selected()
	switch choice {
	case ChoiceNone:
		return m, cmd
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, "solo", m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	mode, _ := choice.Mode()
	game, err := NewGameModel(GameOptions{
		Mode:    mode,
		Config:  m.opts.Config,
		Store:   m.opts.Store,
		Runtime: m.runtime,
		Logger:  m.opts.Logger,
	})
	if err != nil {
		m.opts.Logger.Error("cannot start game", "mode", mode, "err", err)
		m.menu = NewMenuModel(m.opts.Store, m.runtime)
		return m, nil
	}
	m.game = &game
	m.screen = screenGame

	// A tick left over from the previous game keeps driving this one.
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.game.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.opts.Store, m.runtime)
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.ticking = false
		return m, nil
	}

	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.opts.Store, m.runtime)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if app, ok := final.(AppModel); ok && app.game != nil {
		app.game.Session().Flush()
	}
	return err
}
