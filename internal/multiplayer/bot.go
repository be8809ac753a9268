package multiplayer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris-duel/internal/input"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

// Bot is a KeySource that plays badly on purpose: for each new piece it
// picks a random column and rotation, steers toward them and hard drops.
type Bot struct {
	rng *rand.Rand

	pieces   int
	planned  bool
	targetX  int
	rotation int
	tries    int
	pressed  bool // a first-press-only key was held last tick
}

// NewBot returns a bot seeded with seed.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Keys implements KeySource.
func (b *Bot) Keys(_ time.Time, snap tetris.Snapshot) input.KeyState {
	cur := snap.Current
	if cur.IsNone() || snap.Paused {
		b.pressed = false
		return input.KeySet{}
	}

	if !b.planned || snap.Pieces != b.pieces {
		b.pieces = snap.Pieces
		b.planned = true
		b.targetX = b.rng.Intn(tetris.Width)
		b.rotation = b.rng.Intn(4)
		b.tries = 0
	}

	// Rotation and hard drop need a release between presses.
	if b.pressed {
		b.pressed = false
		return input.KeySet{}
	}

	if cur.Rotation != b.rotation && b.tries < 4 {
		b.tries++
		b.pressed = true
		return input.KeySet{input.KeyRotateCW: true}
	}

	switch {
	case cur.X < b.targetX:
		return input.KeySet{input.KeyRight: true}
	case cur.X > b.targetX:
		return input.KeySet{input.KeyLeft: true}
	}

	b.pressed = true
	return input.KeySet{input.KeyHardDrop: true}
}
