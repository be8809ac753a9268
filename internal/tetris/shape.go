// Package tetris implements the falling-block simulation: shapes, pieces,
// the single-player Field state machine and garbage exchange between two
// fields. The package is pure logic with no I/O; callers drive it one tick
// at a time and read state back through Snapshot.
package tetris

// Field dimensions. Row 0 is the bottom row.
const (
	Width  = 10
	Height = 20
)

// Kind identifies the content of a grid cell or the type of a piece.
type Kind uint8

const (
	KindNone Kind = iota
	KindZ
	KindS
	KindI
	KindT
	KindO
	KindL
	KindJ
	KindGarbage

	numKinds
)

// PieceKinds lists the seven playable tetrominoes in draw order.
var PieceKinds = [...]Kind{KindZ, KindS, KindI, KindT, KindO, KindL, KindJ}

var kindNames = [numKinds]string{
	KindNone:    "none",
	KindZ:       "Z",
	KindS:       "S",
	KindI:       "I",
	KindT:       "T",
	KindO:       "O",
	KindL:       "L",
	KindJ:       "J",
	KindGarbage: "garbage",
}

// String returns a short name for the kind.
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// IsPiece reports whether k is one of the seven tetrominoes.
func (k Kind) IsPiece() bool {
	return k >= KindZ && k <= KindJ
}

// Offset is a cell position relative to a piece origin. DY grows upward.
type Offset struct {
	DX, DY int
}

// baseShapes holds rotation 0 for each tetromino, pivot at (0, 0).
var baseShapes = [numKinds][4]Offset{
	KindZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	KindS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	KindI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	KindJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
}

// rotations[k][r] are the offsets of kind k after r clockwise quarter turns.
var rotations [numKinds][4][4]Offset

func init() {
	for _, k := range PieceKinds {
		cells := baseShapes[k]
		for r := range 4 {
			rotations[k][r] = cells
			if k == KindO {
				continue
			}
			for i, c := range cells {
				cells[i] = Offset{DX: c.DY, DY: -c.DX}
			}
		}
	}
}

// Offsets returns the four cell offsets of kind k at rotation r.
// Non-piece kinds yield four zero offsets.
func Offsets(k Kind, r int) [4]Offset {
	if !k.IsPiece() {
		return [4]Offset{}
	}
	return rotations[k][wrapRotation(r)]
}

func wrapRotation(r int) int {
	return ((r % 4) + 4) % 4
}
