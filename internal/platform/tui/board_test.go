package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

func startedField(t *testing.T) *tetris.Field {
	t.Helper()
	f := tetris.NewField(rand.New(rand.NewSource(1)))
	f.Start()
	return f
}

// screenPos returns where a grid cell lands for a board drawn at (0, 0).
func screenPos(col, row int) (int, int) {
	return meterW + 1 + col*cellW, 1 + (tetris.Height - 1 - row)
}

func TestDrawBoardFrameAndPiece(t *testing.T) {
	f := startedField(t)
	snap := f.Snapshot()
	dst := core.NewScreen(seatW, boardH)

	DrawBoard(dst, 0, 0, BoardView{Title: "P1", Snap: snap})

	if got := dst.Get(meterW, 0); got != '┌' {
		t.Errorf("frame corner = %q, want '┌'", got)
	}
	if !strings.Contains(dst.Row(0), "P1") {
		t.Errorf("title missing from top row: %q", dst.Row(0))
	}

	for _, c := range snap.Current.Cells() {
		x, y := screenPos(c.X, c.Y)
		if got := dst.Get(x, y); got != '█' {
			t.Errorf("current piece cell (%d,%d) = %q, want '█'", c.X, c.Y, got)
		}
	}

	ghost := snap.Current.MovedTo(snap.Current.X, snap.GhostY)
	for _, c := range ghost.Cells() {
		x, y := screenPos(c.X, c.Y)
		if got := dst.Get(x, y); got != '░' {
			t.Errorf("ghost cell (%d,%d) = %q, want '░'", c.X, c.Y, got)
		}
	}

	if !strings.Contains(dst.String(), "SCORE") || !strings.Contains(dst.String(), "NEXT") {
		t.Error("sidebar labels missing")
	}
}

func TestDrawBoardGhostHidden(t *testing.T) {
	f := startedField(t)
	f.ToggleGhost()
	dst := core.NewScreen(seatW, boardH)

	DrawBoard(dst, 0, 0, BoardView{Title: "P1", Snap: f.Snapshot()})

	if strings.ContainsRune(dst.String(), '░') {
		t.Error("ghost drawn while disabled")
	}
}

func TestDrawBoardPausedBanner(t *testing.T) {
	f := startedField(t)
	f.TogglePause()
	dst := core.NewScreen(seatW, boardH)

	DrawBoard(dst, 0, 0, BoardView{Title: "P1", Snap: f.Snapshot()})

	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("PAUSED banner missing")
	}
}

func TestDrawBoardGarbageMeter(t *testing.T) {
	f := startedField(t)
	f.AddIncomingGarbage(3)
	dst := core.NewScreen(seatW, boardH)

	DrawBoard(dst, 0, 0, BoardView{Title: "P1", Snap: f.Snapshot()})

	for i := range 3 {
		if got := dst.Get(0, boardH-2-i); got != '▌' {
			t.Errorf("meter row %d = %q, want '▌'", i, got)
		}
	}
	if got := dst.Get(0, boardH-5); got == '▌' {
		t.Error("meter taller than pending garbage")
	}
	if !strings.Contains(dst.String(), "+3 garbage") {
		t.Error("garbage count missing from sidebar")
	}
}

func TestDrawSession(t *testing.T) {
	s := multiplayer.NewSession(multiplayer.Options{Mode: multiplayer.ModeVersus, Seed: 1})
	s.Start(time.Unix(0, 0))

	dst := core.NewScreen(80, 24)
	DrawSession(dst, s, "help line")

	out := dst.String()
	for _, want := range []string{"VERSUS", "P1", "P2", "help line"} {
		if !strings.Contains(out, want) {
			t.Errorf("session view missing %q", want)
		}
	}
}

func TestDrawSessionTooSmall(t *testing.T) {
	s := multiplayer.NewSession(multiplayer.Options{Mode: multiplayer.ModeVersus, Seed: 1})
	s.Start(time.Unix(0, 0))

	dst := core.NewScreen(40, 12)
	DrawSession(dst, s, "")

	if !strings.Contains(dst.String(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestOutcomeText(t *testing.T) {
	tests := []struct {
		o    multiplayer.Outcome
		want string
	}{
		{multiplayer.OutcomeNone, ""},
		{multiplayer.OutcomeGameOver, ""},
		{multiplayer.OutcomePlayer1Wins, "P1 WINS"},
		{multiplayer.OutcomePlayer2Wins, "P2 WINS"},
		{multiplayer.OutcomeDraw, "DRAW"},
	}
	for _, tt := range tests {
		if got := outcomeText(tt.o); got != tt.want {
			t.Errorf("outcomeText(%v) = %q, want %q", tt.o, got, tt.want)
		}
	}
}
