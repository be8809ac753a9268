// Package multiplayer runs one or two tetris fields under a single tick
// loop: input polling, gravity, garbage exchange between opponents and
// match outcome. Solo is the one-seat case of the same loop.
package multiplayer

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID identifies a seat. Player1 is the left board.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// MatchID uniquely identifies one game of a session.
type MatchID string

func newMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// Mode selects how many fields a session runs.
type Mode int

const (
	ModeSolo Mode = iota
	ModeVersus
)

// String returns the mode name used in storage and on the command line.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "solo"
	case ModeVersus:
		return "versus"
	default:
		return "unknown"
	}
}

// Seats returns the number of fields in the mode.
func (m Mode) Seats() int {
	if m == ModeVersus {
		return 2
	}
	return 1
}

// ParseMode resolves "solo" or "versus".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "solo", "":
		return ModeSolo, nil
	case "versus", "vs":
		return ModeVersus, nil
	}
	return ModeSolo, fmt.Errorf("multiplayer: unknown mode %q (want solo or versus)", s)
}

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // still running or never started
	OutcomeGameOver                // solo top-out
	OutcomePlayer1Wins
	OutcomePlayer2Wins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game over"
	case OutcomePlayer1Wins:
		return "P1 wins"
	case OutcomePlayer2Wins:
		return "P2 wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Winner returns the winning seat, if any.
func (o Outcome) Winner() (PlayerID, bool) {
	switch o {
	case OutcomePlayer1Wins:
		return Player1, true
	case OutcomePlayer2Wins:
		return Player2, true
	}
	return 0, false
}
