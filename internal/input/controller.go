// Package input schedules player commands from held-key state using
// delayed auto shift (DAS) and auto repeat rate (ARR).
package input

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

// Default repeat timing.
const (
	DefaultDAS = 160 * time.Millisecond
	DefaultARR = 50 * time.Millisecond
)

// Key is a logical game key, independent of the physical binding.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeySoftDrop
	KeyHardDrop
	KeyRotateCW
	KeyRotateCCW

	numKeys
)

var keyNames = [numKeys]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeySoftDrop:  "soft_drop",
	KeyHardDrop:  "hard_drop",
	KeyRotateCW:  "rotate_cw",
	KeyRotateCCW: "rotate_ccw",
}

var keyCommands = [numKeys]tetris.Command{
	KeyLeft:      tetris.CmdMoveLeft,
	KeyRight:     tetris.CmdMoveRight,
	KeySoftDrop:  tetris.CmdSoftDrop,
	KeyHardDrop:  tetris.CmdHardDrop,
	KeyRotateCW:  tetris.CmdRotateRight,
	KeyRotateCCW: tetris.CmdRotateLeft,
}

// Keys returns every logical key in a stable order.
func Keys() []Key {
	keys := make([]Key, 0, numKeys)
	for k := range numKeys {
		keys = append(keys, k)
	}
	return keys
}

// ParseKey resolves a config name such as "soft_drop".
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}

func (k Key) String() string {
	if k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// Command is the field command the key issues.
func (k Key) Command() tetris.Command {
	if k >= numKeys {
		return tetris.CmdNone
	}
	return keyCommands[k]
}

// Repeats reports whether holding the key auto-repeats.
// Rotation and hard drop fire once per press.
func (k Key) Repeats() bool {
	return k == KeyLeft || k == KeyRight || k == KeySoftDrop
}

// KeyState reports which keys are held at poll time.
type KeyState interface {
	Held(k Key) bool
}

// KeySet is a KeyState backed by a map.
type KeySet map[Key]bool

// Held implements KeyState.
func (s KeySet) Held(k Key) bool {
	return s[k]
}

// Timing configures the repeat schedule.
type Timing struct {
	DAS time.Duration
	ARR time.Duration
}

// DefaultTiming returns 160 ms DAS and 50 ms ARR.
func DefaultTiming() Timing {
	return Timing{DAS: DefaultDAS, ARR: DefaultARR}
}

type keyTrack struct {
	held       bool
	pressedAt  time.Time
	repeatedAt time.Time
}

// Controller turns held-key state into commands, one Poll per tick.
// It does not validate moves.
type Controller struct {
	timing Timing
	keys   [numKeys]keyTrack
}

// NewController creates a controller with the given timing.
func NewController(timing Timing) *Controller {
	return &Controller{timing: timing}
}

// Poll compares state against the tracked keys and returns the commands
// due at now. A newly held key fires at once; a repeatable key fires again
// once it has been held longer than DAS, then every ARR. Releasing a key
// forgets it so the next press starts a fresh delay.
func (c *Controller) Poll(now time.Time, state KeyState) []tetris.Command {
	var cmds []tetris.Command
	for k := range numKeys {
		tr := &c.keys[k]
		if !state.Held(k) {
			*tr = keyTrack{}
			continue
		}

		if !tr.held {
			*tr = keyTrack{held: true, pressedAt: now, repeatedAt: now}
			cmds = append(cmds, k.Command())
			continue
		}

		if !k.Repeats() {
			continue
		}
		if now.Sub(tr.pressedAt) > c.timing.DAS && now.Sub(tr.repeatedAt) >= c.timing.ARR {
			tr.repeatedAt = now
			cmds = append(cmds, k.Command())
		}
	}
	return cmds
}

// Held reports whether the controller is tracking k as pressed.
func (c *Controller) Held(k Key) bool {
	if k >= numKeys {
		return false
	}
	return c.keys[k].held
}

// Reset forgets all held keys.
func (c *Controller) Reset() {
	c.keys = [numKeys]keyTrack{}
}
