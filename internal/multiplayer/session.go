package multiplayer

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-duel/internal/config"
	"github.com/vovakirdan/tetris-duel/internal/input"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Mode      Mode
	Seed      int64 // 0 seeds from the clock
	Timing    input.Timing
	Gravity   func(level int) time.Duration
	NetCancel bool
	HideGhost bool
	Recorder  Recorder // optional
	Logger    *log.Logger
}

type seat struct {
	id       PlayerID
	field    *tetris.Field
	input    *input.Controller
	lastFall time.Time
}

// Session owns the fields of one play session and advances them in a
// fixed order each tick: input, gravity and clear animation, garbage
// exchange, then game-over detection.
//
// A Session is not safe for concurrent use; the tick loop owns it.
type Session struct {
	id       MatchID
	mode     Mode
	seats    []*seat
	exchange tetris.GarbageExchange
	gravity  func(level int) time.Duration
	recorder Recorder
	logger   *log.Logger

	best    int
	ticks   int
	running bool
	outcome Outcome

	wg sync.WaitGroup
}

// NewSession builds an idle session. The mode's high score is read from the
// recorder once, here.
func NewSession(opts Options) *Session {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Timing == (input.Timing{}) {
		opts.Timing = input.DefaultTiming()
	}
	if opts.Gravity == nil {
		opts.Gravity = config.DefaultTetrisConfig().Gravity.Delay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		mode:     opts.Mode,
		exchange: tetris.GarbageExchange{NetCancel: opts.NetCancel},
		gravity:  opts.Gravity,
		recorder: opts.Recorder,
		logger:   opts.Logger.With("mode", opts.Mode.String()),
	}

	for i := range opts.Mode.Seats() {
		f := tetris.NewField(rand.New(rand.NewSource(opts.Seed + int64(i))))
		if opts.HideGhost {
			f.ToggleGhost()
		}
		s.seats = append(s.seats, &seat{
			id:    PlayerID(i),
			field: f,
			input: input.NewController(opts.Timing),
		})
	}

	if s.recorder != nil {
		best, err := s.recorder.HighScore(s.mode.String())
		if err != nil {
			s.logger.Warn("could not load high score", "err", err)
		}
		s.best = best
	}
	return s
}

// Start begins a new game on every field. Wins from earlier games in the
// session are kept.
func (s *Session) Start(now time.Time) {
	s.id = newMatchID()
	s.ticks = 0
	s.outcome = OutcomeNone
	s.running = true
	for _, st := range s.seats {
		st.field.Start()
		st.input.Reset()
		st.lastFall = now
	}
	s.logger.Debug("game started", "match", s.id)
}

// Restart is Start, named for the end-of-game prompt.
func (s *Session) Restart(now time.Time) {
	s.Start(now)
}

// ReturnToMenu stops the session and clears the fields and win tally.
func (s *Session) ReturnToMenu() {
	s.running = false
	s.outcome = OutcomeNone
	for _, st := range s.seats {
		st.field.ResetForMenu()
		st.input.Reset()
	}
}

// Tick advances the session by one step. keys[i] is the held-key state of
// seat i; missing entries count as no keys held. Finished or stopped
// sessions ignore ticks.
func (s *Session) Tick(now time.Time, keys []input.KeyState) {
	if !s.running {
		return
	}
	s.ticks++

	for i, st := range s.seats {
		var held input.KeyState = input.KeySet(nil)
		if i < len(keys) && keys[i] != nil {
			held = keys[i]
		}
		for _, cmd := range st.input.Poll(now, held) {
			st.field.Apply(cmd)
			if cmd.IsDrop() {
				st.lastFall = now
			}
		}
	}

	for _, st := range s.seats {
		s.advance(st, now)
	}

	if s.mode == ModeVersus {
		s.exchange.Reconcile(s.seats[0].field, s.seats[1].field)
	}

	s.checkOutcome()
}

// advance runs the clear animation or gravity for one field.
func (s *Session) advance(st *seat, now time.Time) {
	f := st.field
	switch f.Phase() {
	case tetris.PhaseAnimating:
		f.Tick()
		if f.Phase() == tetris.PhaseActive {
			st.lastFall = now
		}
	case tetris.PhaseActive:
		if f.Paused() {
			return
		}
		if now.Sub(st.lastFall) > s.gravity(f.Level()) {
			f.SoftDrop()
			st.lastFall = now
		}
	}
}

func (s *Session) checkOutcome() {
	switch s.mode {
	case ModeSolo:
		if s.seats[0].field.GameOver() {
			s.finish(OutcomeGameOver)
		}
	case ModeVersus:
		p1, p2 := s.seats[0].field, s.seats[1].field
		switch {
		case p1.GameOver() && p2.GameOver():
			s.finish(OutcomeDraw)
		case p1.GameOver():
			p2.AddWin()
			s.finish(OutcomePlayer2Wins)
		case p2.GameOver():
			p1.AddWin()
			s.finish(OutcomePlayer1Wins)
		}
	}
}

func (s *Session) finish(o Outcome) {
	s.running = false
	s.outcome = o
	for _, st := range s.seats {
		s.best = max(s.best, st.field.Score())
	}
	s.logger.Info("game finished", "match", s.id, "outcome", o, "ticks", s.ticks)
	s.record()
}

// record hands the final tallies to the recorder on its own goroutine so
// storage latency never reaches the tick loop.
func (s *Session) record() {
	if s.recorder == nil {
		return
	}

	var games []GameRecord
	for _, st := range s.seats {
		res := st.field.Result()
		if res.Score == 0 && s.mode == ModeSolo {
			continue
		}
		games = append(games, GameRecord{
			MatchID:    string(s.id),
			Mode:       s.mode.String(),
			Player:     st.id.String(),
			GameResult: res,
		})
	}

	var match *MatchRecord
	if s.mode == ModeVersus {
		p1, p2 := s.seats[0].field, s.seats[1].field
		match = &MatchRecord{
			MatchID: string(s.id),
			Score1:  p1.Score(),
			Score2:  p2.Score(),
			Wins1:   p1.Wins(),
			Wins2:   p2.Wins(),
			Ticks:   s.ticks,
		}
		if w, ok := s.outcome.Winner(); ok {
			match.Winner = w.String()
		}
	}

	recorder, logger := s.recorder, s.logger
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for _, g := range games {
			if err := recorder.SaveGameResult(g); err != nil {
				logger.Warn("could not record game", "player", g.Player, "err", err)
			}
		}
		if match != nil {
			if err := recorder.SaveMatchResult(*match); err != nil {
				logger.Warn("could not record match", "match", match.MatchID, "err", err)
			}
		}
	}()
}

// Flush waits for pending recorder writes.
func (s *Session) Flush() {
	s.wg.Wait()
}

// TogglePause pauses or resumes every field together. Resuming restarts the
// fall timers so pieces do not drop the instant play continues.
func (s *Session) TogglePause(now time.Time) {
	if !s.running {
		return
	}
	for _, st := range s.seats {
		st.field.TogglePause()
		if !st.field.Paused() {
			st.lastFall = now
		}
	}
}

// ToggleGhost flips the landing preview on every field.
func (s *Session) ToggleGhost() {
	for _, st := range s.seats {
		st.field.ToggleGhost()
	}
}

// Snapshot returns a copy of seat p's field. Unknown seats yield an idle
// zero snapshot.
func (s *Session) Snapshot(p PlayerID) tetris.Snapshot {
	if int(p) < 0 || int(p) >= len(s.seats) {
		return tetris.Snapshot{}
	}
	return s.seats[p].field.Snapshot()
}

// Gravity returns the current fall delay for seat p.
func (s *Session) Gravity(p PlayerID) time.Duration {
	if int(p) < 0 || int(p) >= len(s.seats) {
		return 0
	}
	return s.gravity(s.seats[p].field.Level())
}

func (s *Session) ID() MatchID      { return s.id }
func (s *Session) Mode() Mode       { return s.mode }
func (s *Session) Seats() int       { return len(s.seats) }
func (s *Session) Ticks() int       { return s.ticks }
func (s *Session) Running() bool    { return s.running }
func (s *Session) Outcome() Outcome { return s.outcome }
func (s *Session) Finished() bool   { return s.outcome != OutcomeNone }
func (s *Session) BestScore() int   { return s.best }
func (s *Session) Paused() bool     { return s.running && s.seats[0].field.Paused() }
