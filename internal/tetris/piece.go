package tetris

import "math/rand"

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Piece is a tetromino instance. It is a value type: every transformation
// returns a new Piece and the receiver is never modified.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int
}

// NewPiece returns a piece of kind k at the origin in rotation 0.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k}
}

// RandomPiece draws a kind uniformly from the seven tetrominoes.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(PieceKinds[rng.Intn(len(PieceKinds))])
}

// IsNone reports whether p is the absent piece.
func (p Piece) IsNone() bool {
	return p.Kind == KindNone
}

// CellOffset returns the offset of cell i (0..3) at the current rotation.
func (p Piece) CellOffset(i int) (dx, dy int) {
	o := Offsets(p.Kind, p.Rotation)[i]
	return o.DX, o.DY
}

// Cells returns the absolute grid positions of the four cells.
func (p Piece) Cells() [4]Point {
	var pts [4]Point
	for i, o := range Offsets(p.Kind, p.Rotation) {
		pts[i] = Point{X: p.X + o.DX, Y: p.Y + o.DY}
	}
	return pts
}

// MinDY returns the lowest vertical offset of the piece.
func (p Piece) MinDY() int {
	offs := Offsets(p.Kind, p.Rotation)
	m := offs[0].DY
	for _, o := range offs[1:] {
		m = min(m, o.DY)
	}
	return m
}

// MaxDY returns the highest vertical offset of the piece.
func (p Piece) MaxDY() int {
	offs := Offsets(p.Kind, p.Rotation)
	m := offs[0].DY
	for _, o := range offs[1:] {
		m = max(m, o.DY)
	}
	return m
}

// RotatedClockwise returns a copy turned a quarter clockwise.
func (p Piece) RotatedClockwise() Piece {
	p.Rotation = wrapRotation(p.Rotation + 1)
	return p
}

// RotatedCounterClockwise returns a copy turned a quarter counter-clockwise.
func (p Piece) RotatedCounterClockwise() Piece {
	p.Rotation = wrapRotation(p.Rotation - 1)
	return p
}

// MovedTo returns a copy positioned at (x, y).
func (p Piece) MovedTo(x, y int) Piece {
	p.X, p.Y = x, y
	return p
}
