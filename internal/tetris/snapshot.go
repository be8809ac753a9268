package tetris

// Snapshot is a detached copy of a field's visible state. Renderers and
// recorders read snapshots; they never hold a *Field.
type Snapshot struct {
	Grid    [Height][Width]Kind
	Current Piece
	Next    Piece
	GhostY  int
	Ghost   bool

	Phase        Phase
	Paused       bool
	ClearingRows []int
	ClearTimer   int

	Score    int
	Level    int
	Lines    int
	Pieces   int
	Tetrises int
	Wins     int

	IncomingGarbage int
	OutgoingGarbage int
}

// Cell returns the grid content at (x, y), or KindNone off the grid.
func (s Snapshot) Cell(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return KindNone
	}
	return s.Grid[y][x]
}

// IsClearing reports whether row y is flashing.
func (s Snapshot) IsClearing(y int) bool {
	for _, r := range s.ClearingRows {
		if r == y {
			return true
		}
	}
	return false
}

// GameOver reports whether the field had topped out.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// GameResult is the final tally of one game, handed to persistence.
type GameResult struct {
	Score    int
	Level    int
	Lines    int
	Tetrises int
	Pieces   int
}

// Snapshot copies the field state.
func (f *Field) Snapshot() Snapshot {
	s := Snapshot{
		Grid:            f.grid,
		Current:         f.current,
		Next:            f.next,
		GhostY:          f.GhostY(),
		Ghost:           f.ghost,
		Phase:           f.phase,
		Paused:          f.paused,
		ClearingRows:    f.ClearingRows(),
		ClearTimer:      f.clear.ticks,
		Score:           f.score,
		Level:           f.level,
		Lines:           f.lines,
		Pieces:          f.pieces,
		Tetrises:        f.tetrises,
		Wins:            f.wins,
		IncomingGarbage: f.incoming,
		OutgoingGarbage: f.outgoing,
	}
	return s
}

// Result returns the counters persisted at game over.
func (f *Field) Result() GameResult {
	return GameResult{
		Score:    f.score,
		Level:    f.level,
		Lines:    f.lines,
		Tetrises: f.tetrises,
		Pieces:   f.pieces,
	}
}

// Cell returns the grid content at (x, y), or KindNone off the grid.
func (f *Field) Cell(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return KindNone
	}
	return f.grid[y][x]
}

// GhostY is the row the current piece would land on, or -1 without a piece.
func (f *Field) GhostY() int {
	if f.current.IsNone() {
		return -1
	}
	return f.dropY(f.current)
}

// ClearingRows returns a copy of the rows in the clear animation.
func (f *Field) ClearingRows() []int {
	if len(f.clear.rows) == 0 {
		return nil
	}
	rows := make([]int, len(f.clear.rows))
	copy(rows, f.clear.rows)
	return rows
}

func (f *Field) Current() Piece       { return f.current }
func (f *Field) Next() Piece          { return f.next }
func (f *Field) ClearTimer() int      { return f.clear.ticks }
func (f *Field) Phase() Phase         { return f.phase }
func (f *Field) Started() bool        { return f.phase != PhaseIdle }
func (f *Field) Paused() bool         { return f.paused }
func (f *Field) GameOver() bool       { return f.phase == PhaseGameOver }
func (f *Field) GhostEnabled() bool   { return f.ghost }
func (f *Field) Score() int           { return f.score }
func (f *Field) Level() int           { return f.level }
func (f *Field) LinesCleared() int    { return f.lines }
func (f *Field) TotalPieces() int     { return f.pieces }
func (f *Field) TetrisCount() int     { return f.tetrises }
func (f *Field) Wins() int            { return f.wins }
func (f *Field) IncomingGarbage() int { return f.incoming }
func (f *Field) OutgoingGarbage() int { return f.outgoing }
