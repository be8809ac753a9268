package tetris

import "math/rand"

// ClearAnimationTicks is how many ticks full rows flash before removal.
const ClearAnimationTicks = 8

// LinesPerLevel is the number of cleared lines per level step.
const LinesPerLevel = 10

// linePoints is the base score per single clear event, indexed by row count.
var linePoints = [5]int{0, 40, 100, 300, 1200}

// garbageSent is the attack produced per clear event, indexed by row count.
var garbageSent = [5]int{0, 0, 1, 2, 4}

// Phase is the lifecycle state of a Field.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseAnimating
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseAnimating:
		return "animating"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// lineClear is the payload of PhaseAnimating. It is zero in every other phase.
type lineClear struct {
	rows  []int
	ticks int
}

// Field is one player's playing field.
//
// All mutators are silent no-ops when the request is illegal: a blocked move
// leaves the piece untouched, and once the field is over only Start and
// ResetForMenu have any effect.
type Field struct {
	rng *rand.Rand

	grid    [Height][Width]Kind
	current Piece
	next    Piece

	phase  Phase
	clear  lineClear
	paused bool
	ghost  bool

	score    int
	level    int
	lines    int
	pieces   int
	tetrises int
	wins     int

	incoming int
	outgoing int
}

// NewField returns an idle field drawing pieces from rng.
func NewField(rng *rand.Rand) *Field {
	return &Field{
		rng:   rng,
		level: 1,
		ghost: true,
	}
}

// Start begins a new game. Wins carry over from the previous game.
func (f *Field) Start() {
	f.resetGame()
	f.phase = PhaseActive
	f.next = RandomPiece(f.rng)
	f.spawn()
}

// ResetForMenu returns the field to idle and forgets the win tally.
func (f *Field) ResetForMenu() {
	f.resetGame()
	f.wins = 0
	f.phase = PhaseIdle
}

func (f *Field) resetGame() {
	f.grid = [Height][Width]Kind{}
	f.current = Piece{}
	f.next = Piece{}
	f.clear = lineClear{}
	f.paused = false
	f.score = 0
	f.level = 1
	f.lines = 0
	f.pieces = 0
	f.tetrises = 0
	f.incoming = 0
	f.outgoing = 0
}

// controllable reports whether the current piece accepts player commands.
func (f *Field) controllable() bool {
	return f.phase == PhaseActive && !f.paused && !f.current.IsNone()
}

// MoveLeft shifts the current piece one column left if it fits.
func (f *Field) MoveLeft() {
	if f.controllable() {
		f.tryMove(f.current.MovedTo(f.current.X-1, f.current.Y))
	}
}

// MoveRight shifts the current piece one column right if it fits.
func (f *Field) MoveRight() {
	if f.controllable() {
		f.tryMove(f.current.MovedTo(f.current.X+1, f.current.Y))
	}
}

// RotateRight turns the current piece clockwise if the result fits.
// There is no wall kick.
func (f *Field) RotateRight() {
	if f.controllable() {
		f.tryMove(f.current.RotatedClockwise())
	}
}

// RotateLeft turns the current piece counter-clockwise if the result fits.
func (f *Field) RotateLeft() {
	if f.controllable() {
		f.tryMove(f.current.RotatedCounterClockwise())
	}
}

// SoftDrop moves the current piece down one row, locking it when blocked.
// Gravity uses the same step.
func (f *Field) SoftDrop() {
	if !f.controllable() {
		return
	}
	if !f.tryMove(f.current.MovedTo(f.current.X, f.current.Y-1)) {
		f.lock()
	}
}

// HardDrop places the current piece at its landing row and locks it.
func (f *Field) HardDrop() {
	if !f.controllable() {
		return
	}
	f.current.Y = f.dropY(f.current)
	f.lock()
}

// TogglePause freezes or resumes the field. Idle and finished fields ignore it.
func (f *Field) TogglePause() {
	if f.phase == PhaseIdle || f.phase == PhaseGameOver {
		return
	}
	f.paused = !f.paused
}

// ToggleGhost flips the landing preview.
func (f *Field) ToggleGhost() {
	if f.phase == PhaseGameOver {
		return
	}
	f.ghost = !f.ghost
}

// AddIncomingGarbage queues n garbage rows for insertion at the next spawn.
func (f *Field) AddIncomingGarbage(n int) {
	if n <= 0 || f.phase == PhaseIdle || f.phase == PhaseGameOver {
		return
	}
	f.incoming += n
}

// ClearOutgoingGarbage zeroes the pending attack after it has been delivered.
func (f *Field) ClearOutgoingGarbage() {
	f.outgoing = 0
}

// AddWin credits the field with a match win.
func (f *Field) AddWin() {
	if f.phase == PhaseGameOver {
		return
	}
	f.wins++
}

// Tick advances the line-clear animation by one step.
func (f *Field) Tick() {
	if f.phase != PhaseAnimating || f.paused {
		return
	}
	f.clear.ticks--
	if f.clear.ticks > 0 {
		return
	}
	f.finishClear()
}

// canPlace reports whether p fits. Cells above the visible grid are legal.
func (f *Field) canPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y < 0 {
			return false
		}
		if c.Y < Height && f.grid[c.Y][c.X] != KindNone {
			return false
		}
	}
	return true
}

// tryMove commits p as the current piece if it fits.
func (f *Field) tryMove(p Piece) bool {
	if !f.canPlace(p) {
		return false
	}
	f.current = p
	return true
}

// dropY returns the lowest legal row for p in its column.
func (f *Field) dropY(p Piece) int {
	y := p.Y
	for f.canPlace(p.MovedTo(p.X, y-1)) {
		y--
	}
	return y
}

func (f *Field) lock() {
	for _, c := range f.current.Cells() {
		if c.Y >= 0 && c.Y < Height && c.X >= 0 && c.X < Width {
			f.grid[c.Y][c.X] = f.current.Kind
		}
	}
	f.current = Piece{}
	f.pieces++

	if rows := f.fullRows(); len(rows) > 0 {
		f.phase = PhaseAnimating
		f.clear = lineClear{rows: rows, ticks: ClearAnimationTicks}
		return
	}
	f.spawn()
}

// fullRows scans bottom-up for rows that are full and hold no garbage.
func (f *Field) fullRows() []int {
	var rows []int
	for y := range Height {
		full := true
		for _, k := range f.grid[y] {
			if k == KindNone || k == KindGarbage {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

func (f *Field) finishClear() {
	n := min(len(f.clear.rows), len(linePoints)-1)
	f.removeRows(f.clear.rows)
	f.clear = lineClear{}
	f.phase = PhaseActive

	f.outgoing = garbageSent[n]
	if n == 4 {
		f.tetrises++
	}
	f.score += linePoints[n] * f.level
	f.lines += n
	for f.lines/LinesPerLevel >= f.level {
		f.level++
	}

	f.spawn()
}

// removeRows drops the given rows and compacts everything above them down.
func (f *Field) removeRows(rows []int) {
	var cleared [Height]bool
	for _, y := range rows {
		if y >= 0 && y < Height {
			cleared[y] = true
		}
	}
	dst := 0
	for src := range Height {
		if cleared[src] {
			continue
		}
		f.grid[dst] = f.grid[src]
		dst++
	}
	for ; dst < Height; dst++ {
		f.grid[dst] = [Width]Kind{}
	}
}

// spawn applies pending garbage and promotes the next piece.
func (f *Field) spawn() {
	if f.incoming > 0 {
		n := f.incoming
		f.incoming = 0
		f.applyGarbageLines(n)
		if f.phase == PhaseGameOver {
			return
		}
	}

	p := f.next
	f.next = RandomPiece(f.rng)
	p.Rotation = 0
	p.X = Width / 2
	p.Y = Height - 1 - p.MaxDY()

	if !f.canPlace(p) {
		f.endGame()
		return
	}
	f.current = p
}

// applyGarbageLines pushes the stack up by n solid garbage rows. If any of
// the top n rows is occupied the field tops out and the grid is untouched.
func (f *Field) applyGarbageLines(n int) {
	if n <= 0 || f.phase == PhaseGameOver {
		return
	}
	n = min(n, Height)

	for y := Height - n; y < Height; y++ {
		for _, k := range f.grid[y] {
			if k != KindNone {
				f.endGame()
				return
			}
		}
	}

	for y := Height - 1; y >= n; y-- {
		f.grid[y] = f.grid[y-n]
	}
	for y := range n {
		for x := range Width {
			f.grid[y][x] = KindGarbage
		}
	}
	if !f.current.IsNone() {
		f.current.Y += n
	}
}

func (f *Field) endGame() {
	f.phase = PhaseGameOver
	f.current = Piece{}
	f.clear = lineClear{}
	f.paused = false
}
