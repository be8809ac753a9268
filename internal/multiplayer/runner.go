package multiplayer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/tetris-duel/internal/input"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

// ErrTickLimit is returned by Runner.Run when MaxTicks elapse first.
var ErrTickLimit = errors.New("multiplayer: tick limit reached")

// Ticker is the subset of time.Ticker the runner needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wallTicker struct {
	t *time.Ticker
}

// NewTicker wraps a time.Ticker firing every d.
func NewTicker(d time.Duration) Ticker {
	return &wallTicker{t: time.NewTicker(d)}
}

func (w *wallTicker) C() <-chan time.Time { return w.t.C }
func (w *wallTicker) Stop()               { w.t.Stop() }

type virtualTicker struct {
	c    chan time.Time
	done chan struct{}
	once sync.Once
}

// NewVirtualTicker returns a ticker that delivers start+step, start+2*step,
// and so on as fast as they are received. Headless runs use it to simulate
// hours of play in seconds with the same timing rules.
func NewVirtualTicker(start time.Time, step time.Duration) Ticker {
	vt := &virtualTicker{c: make(chan time.Time), done: make(chan struct{})}
	go func() {
		now := start
		for {
			now = now.Add(step)
			select {
			case vt.c <- now:
			case <-vt.done:
				return
			}
		}
	}()
	return vt
}

func (v *virtualTicker) C() <-chan time.Time { return v.c }
func (v *virtualTicker) Stop()               { v.once.Do(func() { close(v.done) }) }

// KeySource supplies held keys for one seat each tick.
type KeySource interface {
	Keys(now time.Time, snap tetris.Snapshot) input.KeyState
}

// Runner drives a started Session from a Ticker without a terminal.
type Runner struct {
	Session  *Session
	Ticker   Ticker
	Players  []KeySource // indexed by seat; nil entries hold nothing
	MaxTicks int         // 0 means no limit
}

// Run ticks the session until the game ends, the context is cancelled or
// MaxTicks is reached. The ticker is stopped on return.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	defer r.Ticker.Stop()

	s := r.Session
	keys := make([]input.KeyState, s.Seats())
	for {
		select {
		case <-ctx.Done():
			return s.Outcome(), ctx.Err()
		case now := <-r.Ticker.C():
			for i := range keys {
				keys[i] = nil
				if i < len(r.Players) && r.Players[i] != nil {
					keys[i] = r.Players[i].Keys(now, s.Snapshot(PlayerID(i)))
				}
			}
			s.Tick(now, keys)

			if !s.Running() {
				return s.Outcome(), nil
			}
			if r.MaxTicks > 0 && s.Ticks() >= r.MaxTicks {
				return s.Outcome(), ErrTickLimit
			}
		}
	}
}
