package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotatedCopiesLeaveReceiver(t *testing.T) {
	p := Piece{Kind: KindT, X: 4, Y: 7, Rotation: 3}

	cw := p.RotatedClockwise()
	ccw := p.RotatedCounterClockwise()

	assert.Equal(t, Piece{Kind: KindT, X: 4, Y: 7, Rotation: 3}, p)
	assert.Equal(t, 0, cw.Rotation)
	assert.Equal(t, 2, ccw.Rotation)
	assert.Equal(t, p.X, cw.X)
	assert.Equal(t, p.Y, cw.Y)
}

func TestPieceCells(t *testing.T) {
	p := Piece{Kind: KindO, X: 3, Y: 5}
	assert.Equal(t, [4]Point{{3, 5}, {4, 5}, {3, 6}, {4, 6}}, p.Cells())

	dx, dy := p.CellOffset(3)
	assert.Equal(t, 1, dx)
	assert.Equal(t, 1, dy)
	assert.Equal(t, 0, p.MinDY())
	assert.Equal(t, 1, p.MaxDY())
}

func TestRandomPieceUniformKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[Kind]int{}
	for range 700 {
		p := RandomPiece(rng)
		assert.True(t, p.Kind.IsPiece())
		seen[p.Kind]++
	}
	assert.Len(t, seen, len(PieceKinds))
}
