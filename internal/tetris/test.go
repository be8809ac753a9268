package tetris

// FillTestRow fills row y with k, leaving the listed columns empty. It lets
// tests in other packages build board positions.
func (f *Field) FillTestRow(y int, k Kind, holes ...int) {
	if y < 0 || y >= Height {
		return
	}
	for x := range Width {
		f.grid[y][x] = k
	}
	for _, x := range holes {
		if x >= 0 && x < Width {
			f.grid[y][x] = KindNone
		}
	}
}

// SetTestPiece replaces the falling piece without a collision check.
func (f *Field) SetTestPiece(p Piece) {
	f.current = p
}
