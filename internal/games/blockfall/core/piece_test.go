package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellsAreDistinct(t *testing.T) {
	for _, kind := range AllKinds() {
		for o := uint8(0); o < 4; o++ {
			p := Piece{Kind: kind, Col: 5, Row: 5, Orientation: o}
			seen := make(map[Point]bool)
			for _, c := range p.Cells() {
				seen[c] = true
			}
			assert.Len(t, seen, 4, "%s orientation %d", kind, o)
		}
	}
}

func TestCellsAddAnchor(t *testing.T) {
	p := NewPiece(KindI, 3, 7)
	assert.Equal(t, [4]Point{{2, 7}, {3, 7}, {4, 7}, {5, 7}}, p.Cells())
}

func TestCanMove(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 0, 18)

	assert.True(t, p.CanMove(0, 0, b))
	assert.False(t, p.CanMove(0, 1, b), "floor")
	assert.False(t, p.CanMove(-1, 0, b), "left wall")
	assert.True(t, p.CanMove(1, 0, b))

	b.setCell(2, 18, FilledCell(ColorRed))
	assert.False(t, p.CanMove(1, 0, b), "filled cell")
}

func TestTryMove(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 0, 0)

	require.True(t, p.TryMove(1, 1, b))
	assert.Equal(t, 1, p.Col)
	assert.Equal(t, 1, p.Row)

	before := p
	assert.False(t, p.TryMove(-5, 0, b))
	assert.Equal(t, before, p, "failed move must not mutate")

	none := Piece{}
	assert.False(t, none.TryMove(1, 0, b))
	assert.Equal(t, Piece{}, none)
}

func TestRotationIsModFour(t *testing.T) {
	b := NewBoard(10, 20)
	for _, kind := range AllKinds() {
		p := NewPiece(kind, 4, 8)
		for i := 0; i < 4; i++ {
			require.True(t, p.TryRotate(RotateCW, b), "%s cw step %d", kind, i)
		}
		assert.Equal(t, uint8(0), p.Orientation, "%s after four cw", kind)

		require.True(t, p.TryRotate(RotateCCW, b))
		assert.Equal(t, uint8(3), p.Orientation, "%s ccw from 0", kind)

		require.True(t, p.TryRotate(RotateCW, b))
		assert.Equal(t, uint8(0), p.Orientation, "%s back to 0", kind)
	}
}

func TestTryRotateNone(t *testing.T) {
	p := Piece{}
	assert.False(t, p.TryRotate(RotateCW, NewBoard(10, 20)))
	assert.Equal(t, Piece{}, p)
}

func TestKickOrder(t *testing.T) {
	assert.Equal(t, [5]Offset{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}, KickOffsets)
}

func TestTryKickPrefersLeftOverDown(t *testing.T) {
	b := NewBoard(10, 20)
	// Blocks (0,0), (+1,0), (0,+1) and (0,-1) for an O anchored at (4,5);
	// only (-1,0) fits.
	b.setCell(5, 5, FilledCell(ColorRed))
	b.setCell(5, 7, FilledCell(ColorRed))

	p := NewPiece(KindO, 4, 5)
	require.True(t, p.TryKick(b))
	assert.Equal(t, 3, p.Col)
	assert.Equal(t, 5, p.Row)
	for _, c := range p.Cells() {
		assert.True(t, b.InBounds(c.Col, c.Row))
		assert.False(t, b.CellFilled(c.Col, c.Row))
	}
}

func TestTryKickInPlaceFirst(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 4, 5)
	require.True(t, p.TryKick(b))
	assert.Equal(t, NewPiece(KindO, 4, 5), p)
}

func TestTryKickFails(t *testing.T) {
	b := NewBoard(10, 20)
	for row := 0; row < 3; row++ {
		fillRow(b, row)
	}
	p := NewPiece(KindO, 4, 0)
	assert.False(t, p.TryKick(b))
	assert.Equal(t, NewPiece(KindO, 4, 0), p)
}

func TestTryRotateKicksOffWall(t *testing.T) {
	b := NewBoard(10, 20)
	// Vertical I next to the right wall; flat orientation needs col+2 in bounds.
	p := Piece{Kind: KindI, Col: 8, Row: 10, Orientation: 1}
	require.True(t, p.TryRotate(RotateCW, b))
	assert.Equal(t, uint8(2), p.Orientation)
	assert.Equal(t, 7, p.Col, "kicked one column left")
}

func TestTryRotateFailureLeavesPiece(t *testing.T) {
	b := NewBoard(4, 4)
	for row := 0; row < 4; row++ {
		fillRow(b, row, 1, 2)
	}
	p := Piece{Kind: KindI, Col: 1, Row: 1, Orientation: 1}
	before := p
	assert.False(t, p.TryRotate(RotateCW, b))
	assert.Equal(t, before, p)
}

func TestDropDistance(t *testing.T) {
	b := NewBoard(10, 20)
	p := NewPiece(KindO, 4, 0)
	assert.Equal(t, 18, p.DropDistance(b))

	fillRow(b, 19)
	assert.Equal(t, 17, p.DropDistance(b))
	assert.Equal(t, 0, Piece{}.DropDistance(b))
}
