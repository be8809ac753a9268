package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/input"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Mode    multiplayer.Mode
	Config  config.TetrisConfig
	Store   *storage.Store // optional
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// GameModel is the Bubble Tea model for one play session.
type GameModel struct {
	session  *multiplayer.Session
	screen   *core.Screen
	held     *HeldKeys
	seats    []SeatKeys
	global   GlobalKeyMap
	tick     time.Duration
	helpLine string
	logger   *log.Logger

	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts its session.
func NewGameModel(opts GameOptions) (GameModel, error) {
	cfg := opts.Config
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	bindings := []config.Bindings{cfg.Keys.Solo}
	if opts.Mode == multiplayer.ModeVersus {
		bindings = []config.Bindings{cfg.Keys.Player1, cfg.Keys.Player2}
	}
	seats := make([]SeatKeys, len(bindings))
	for i, b := range bindings {
		sk, err := NewSeatKeys(b)
		if err != nil {
			return GameModel{}, fmt.Errorf("tui: %w", err)
		}
		seats[i] = sk
	}

	sopts := multiplayer.Options{
		Mode:      opts.Mode,
		Seed:      opts.Runtime.Seed,
		Timing:    cfg.Timing.Input(),
		Gravity:   cfg.Gravity.Delay,
		NetCancel: cfg.Garbage.NetCancel,
		HideGhost: !cfg.Ghost.Enabled,
		Logger:    opts.Logger,
	}
	// A nil *Store must not become a non-nil interface.
	if opts.Store != nil {
		sopts.Recorder = opts.Store
	}

	m := GameModel{
		session: multiplayer.NewSession(sopts),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		held:    NewHeldKeys(cfg.Timing.HoldRelease(), cfg.Timing.HoldLatch()),
		seats:   seats,
		global:  NewGlobalKeyMap(cfg.Keys.Global),
		tick:    cfg.Timing.Tick(),
		logger:  opts.Logger,
	}
	m.helpLine = m.buildHelp()
	m.session.Start(time.Now())
	return m, nil
}

func (m GameModel) buildHelp() string {
	parts := make([]string, 0, 6)
	if len(m.seats) == 1 {
		parts = append(parts, m.seats[0].Describe())
	}
	for _, b := range m.global.ShortHelp() {
		parts = append(parts, helpEntry(b))
	}
	return strings.Join(parts, "  ")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and advances the session on ticks.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.global.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.session.Flush()
		return m, tea.Quit
	}

	for _, seat := range m.seats {
		if seat.Press(m.held, msg, now) {
			return m, nil
		}
	}

	switch action {
	case core.ActionPause:
		m.session.TogglePause(now)
	case core.ActionGhost:
		m.session.ToggleGhost()
	case core.ActionRestart:
		if m.session.Finished() {
			m.held.Reset()
			m.session.Restart(now)
		}
	case core.ActionBack:
		if m.session.Finished() || m.session.Paused() {
			m.logger.Debug("leaving session", "match", m.session.ID(), "ticks", m.session.Ticks())
			m.session.ReturnToMenu()
			m.session.Flush()
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	keys := make([]input.KeyState, len(m.seats))
	for i, seat := range m.seats {
		keys[i] = seat.State(m.held, now)
	}
	m.session.Tick(now, keys)
	return m, tickCmd(m.tick)
}

// View renders the session.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	DrawSession(m.screen, m.session, m.helpLine)
	return RenderScreen(m.screen)
}

// Session exposes the underlying session.
func (m GameModel) Session() *multiplayer.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one session in the terminal until the player quits or backs out.
func Run(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	model.session.Flush()
	return err
}
