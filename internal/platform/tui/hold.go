package tui

import "time"

// HeldKeys turns terminal key events into held/released state. Terminals
// send a press and then auto-repeats but never a release, so a key counts
// as held until no event for it has arrived within the release window.
//
// The OS waits far longer before its first auto-repeat than between
// repeats. Latched keys therefore stay held for the longer latch window
// after a lone event, so one physical hold of a fire-once key is not seen
// as two presses. Once repeats arrive the normal release window applies.
type HeldKeys struct {
	release time.Duration
	latch   time.Duration
	keys    map[string]heldKey
}

type heldKey struct {
	last    time.Time
	events  int
	latched bool
}

// NewHeldKeys creates a tracker with the given release and latch windows.
// A latch shorter than release has no effect.
func NewHeldKeys(release, latch time.Duration) *HeldKeys {
	return &HeldKeys{
		release: release,
		latch:   max(latch, release),
		keys:    make(map[string]heldKey),
	}
}

// Press records an event for the named key.
func (h *HeldKeys) Press(name string, now time.Time) {
	h.press(name, now, false)
}

// Latch records an event for a key that fires once per press.
func (h *HeldKeys) Latch(name string, now time.Time) {
	h.press(name, now, true)
}

func (h *HeldKeys) press(name string, now time.Time, latched bool) {
	k := h.keys[name]
	k.last = now
	k.events++
	k.latched = latched
	h.keys[name] = k
}

// Held reports whether the key had an event within its window.
func (h *HeldKeys) Held(name string, now time.Time) bool {
	k, ok := h.keys[name]
	if !ok {
		return false
	}
	window := h.release
	if k.latched && k.events == 1 {
		window = h.latch
	}
	if now.Sub(k.last) > window {
		delete(h.keys, name)
		return false
	}
	return true
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.keys)
}
