package tui

import (
	"fmt"

	"github.com/vovakirdan/tetris-duel/internal/core"
	"github.com/vovakirdan/tetris-duel/internal/multiplayer"
	"github.com/vovakirdan/tetris-duel/internal/tetris"
)

// Board geometry in screen cells. Each grid cell is two characters wide.
const (
	cellW       = 2
	boardW      = tetris.Width*cellW + 2
	boardH      = tetris.Height + 2
	meterW      = 1
	sidebarW    = 14
	seatW       = meterW + boardW + 1 + sidebarW
	seatGap     = 2
	matchHeight = boardH + 2 // title row and help row
)

const (
	blockGlyph = "██"
	ghostGlyph = "░░"
	flashGlyph = "▓▓"
	emptyGlyph = " ."
)

var kindColors = [...]core.Color{
	tetris.KindNone:    core.ColorDim,
	tetris.KindZ:       core.ColorRed,
	tetris.KindS:       core.ColorGreen,
	tetris.KindI:       core.ColorCyan,
	tetris.KindT:       core.ColorMagenta,
	tetris.KindO:       core.ColorYellow,
	tetris.KindL:       core.ColorOrange,
	tetris.KindJ:       core.ColorBlue,
	tetris.KindGarbage: core.ColorGray,
}

func kindColor(k tetris.Kind) core.Color {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return core.ColorDefault
}

// BoardView is everything needed to draw one seat.
type BoardView struct {
	Title string
	Snap  tetris.Snapshot
	Best  int
}

// MatchWidth returns the screen width needed for the given number of seats.
func MatchWidth(seats int) int {
	return seats*seatW + (seats-1)*seatGap
}

// DrawBoard draws one seat with its top-left corner at (x, y): the garbage
// meter, the framed well and the sidebar.
func DrawBoard(dst *core.Screen, x, y int, v BoardView) {
	s := v.Snap
	frame := core.NewRect(x+meterW, y, boardW, boardH)

	drawMeter(dst, x, y, s.IncomingGarbage)

	frameColor := core.ColorWhite
	if s.GameOver() {
		frameColor = core.ColorDim
	}
	dst.DrawBox(frame, frameColor)
	dst.DrawTextCentered(frame, y, " "+v.Title+" ", core.ColorBrightWhite)

	// screenRow converts a grid row (0 at the bottom) to a screen row.
	screenRow := func(row int) int { return y + 1 + (tetris.Height - 1 - row) }
	put := func(col, row int, glyph string, c core.Color) {
		if col < 0 || col >= tetris.Width || row < 0 || row >= tetris.Height {
			return
		}
		dst.DrawTextColor(frame.X+1+col*cellW, screenRow(row), glyph, c)
	}

	for row := range tetris.Height {
		flashing := s.IsClearing(row)
		for col := range tetris.Width {
			k := s.Cell(col, row)
			switch {
			case flashing && s.ClearTimer%2 == 0:
				put(col, row, flashGlyph, core.ColorBrightWhite)
			case k == tetris.KindNone:
				put(col, row, emptyGlyph, core.ColorDim)
			default:
				put(col, row, blockGlyph, kindColor(k))
			}
		}
	}

	if !s.Current.IsNone() {
		if s.Ghost && s.GhostY >= 0 && s.GhostY != s.Current.Y {
			for _, c := range s.Current.MovedTo(s.Current.X, s.GhostY).Cells() {
				put(c.X, c.Y, ghostGlyph, kindColor(s.Current.Kind))
			}
		}
		for _, c := range s.Current.Cells() {
			put(c.X, c.Y, blockGlyph, kindColor(s.Current.Kind))
		}
	}

	drawSidebar(dst, frame.Right()+1, y, v)

	switch {
	case s.GameOver():
		drawBanner(dst, frame, "GAME OVER", core.ColorBrightRed)
	case s.Paused:
		drawBanner(dst, frame, "PAUSED", core.ColorYellow)
	}
}

// drawMeter shows pending incoming garbage as a red bar along the well.
func drawMeter(dst *core.Screen, x, y, incoming int) {
	n := min(incoming, tetris.Height)
	for i := range n {
		dst.SetCell(x, y+boardH-2-i, core.Cell{Rune: '▌', Color: core.ColorBrightRed})
	}
}

func drawSidebar(dst *core.Screen, x, y int, v BoardView) {
	s := v.Snap

	dst.DrawTextColor(x, y+1, "NEXT", core.ColorGray)
	if !s.Next.IsNone() {
		for _, o := range tetris.Offsets(s.Next.Kind, 0) {
			dst.DrawTextColor(x+(o.DX+1)*cellW, y+3-o.DY, blockGlyph, kindColor(s.Next.Kind))
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score},
		{"LEVEL", s.Level},
		{"LINES", s.Lines},
		{"PIECES", s.Pieces},
		{"TETRIS", s.Tetrises},
		{"WINS", s.Wins},
		{"BEST", v.Best},
	}
	row := y + 6
	for _, st := range stats {
		dst.DrawTextColor(x, row, st.label, core.ColorGray)
		dst.DrawTextColor(x, row+1, fmt.Sprintf("%d", st.value), core.ColorBrightWhite)
		row += 2
	}
	if s.IncomingGarbage > 0 {
		dst.DrawTextColor(x, row, fmt.Sprintf("+%d garbage", s.IncomingGarbage), core.ColorBrightRed)
	}
}

// drawBanner writes a boxed message across the middle of area.
func drawBanner(dst *core.Screen, area core.Rect, text string, c core.Color) {
	box := area.Centered(len(text)+4, 3)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box, box.Y+1, text, c)
}

// outcomeText is the match banner, or "" while play continues.
func outcomeText(o multiplayer.Outcome) string {
	switch o {
	case multiplayer.OutcomePlayer1Wins:
		return "P1 WINS"
	case multiplayer.OutcomePlayer2Wins:
		return "P2 WINS"
	case multiplayer.OutcomeDraw:
		return "DRAW"
	}
	return ""
}

// DrawSession draws every seat of a session centered on the screen, with
// the match banner and a help line.
func DrawSession(dst *core.Screen, s *multiplayer.Session, help string) {
	dst.Clear()

	seats := s.Seats()
	area := dst.Bounds().Centered(MatchWidth(seats), matchHeight)
	if dst.Width() < area.W || dst.Height() < area.H {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", area.W, area.H)
		dst.DrawTextCentered(dst.Bounds(), dst.Height()/2, msg, core.ColorYellow)
		return
	}

	title := "SOLO"
	if s.Mode() == multiplayer.ModeVersus {
		title = "VERSUS"
	}
	dst.DrawTextCentered(area, area.Y, title, core.ColorBrightWhite)

	for i := range seats {
		p := multiplayer.PlayerID(i)
		x := area.X + i*(seatW+seatGap)
		DrawBoard(dst, x, area.Y+1, BoardView{
			Title: p.String(),
			Snap:  s.Snapshot(p),
			Best:  s.BestScore(),
		})
	}

	if text := outcomeText(s.Outcome()); text != "" {
		drawBanner(dst, area, text, core.ColorBrightGreen)
	}

	dst.DrawTextCentered(dst.Bounds(), area.Bottom()-1, help, core.ColorGray)
}
