package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationClosure(t *testing.T) {
	// Four rotations in the same direction return every shape to its
	// original rotation state and cells when no kicks are needed.
	g := NewGrid(10, 22, 2)
	shapes := []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

	for _, shape := range shapes {
		for _, dir := range []int{1, -1} {
			p := Piece{Shape: shape, Col: 4, Row: 10}
			start := p

			for i := 0; i < 4; i++ {
				next, ok := rotateWithKicks(g, p, dir)
				require.True(t, ok, "%s rotation %d in dir %d", shape, i, dir)
				// Open field: the zero kick must have applied
				assert.Equal(t, p.Col, next.Col, "%s should not kick mid-field", shape)
				assert.Equal(t, p.Row, next.Row, "%s should not kick mid-field", shape)
				p = next
			}

			assert.Equal(t, start, p, "%s dir %d", shape, dir)
		}
	}
}

func TestRotationStateArithmetic(t *testing.T) {
	p := Piece{Shape: ShapeT, Rotation: 3}
	assert.Equal(t, 0, p.RotatedRaw(1).Rotation)

	p = Piece{Shape: ShapeT, Rotation: 0}
	assert.Equal(t, 3, p.RotatedRaw(-1).Rotation)
}

func TestWallKickTPiece(t *testing.T) {
	g := NewGrid(10, 22, 2)

	// Vertical T hugging the left wall: cells in columns 0-1.
	p := Piece{Shape: ShapeT, Rotation: 1, Col: -1, Row: 10}
	require.True(t, g.Fits(p))

	// Naive clockwise rotation pokes through the wall; the right-shift
	// kick rescues it.
	rotated, ok := rotateWithKicks(g, p, 1)
	require.True(t, ok)
	assert.Equal(t, 2, rotated.Rotation)
	assert.Equal(t, 0, rotated.Col)
	for _, c := range rotated.Cells() {
		assert.GreaterOrEqual(t, c.Col, 0)
	}
}

func TestWallKickIPieceNeedsTwoColumns(t *testing.T) {
	g := NewGrid(10, 22, 2)

	// Vertical I in column 0 (its offsets sit two columns right of the
	// origin).
	p := Piece{Shape: ShapeI, Rotation: 1, Col: -2, Row: 10}
	require.True(t, g.Fits(p))

	// Horizontal again needs a two-column kick, which only the I table has.
	rotated, ok := rotateWithKicks(g, p, 1)
	require.True(t, ok)
	assert.Equal(t, 0, rotated.Col)
	for _, c := range rotated.Cells() {
		assert.GreaterOrEqual(t, c.Col, 0)
		assert.Less(t, c.Col, 10)
	}
}

func TestRotationRejectedLeavesPieceUnchanged(t *testing.T) {
	g := NewGrid(10, 22, 2)
	p := Piece{Shape: ShapeT, Col: 3, Row: 10}

	// Wall the piece in: every cell occupied except the four it holds.
	own := make(map[Coord]bool, 4)
	for _, c := range p.Cells() {
		own[c] = true
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !own[Coord{Col: col, Row: row}] {
				g.setCell(col, row, ShapeJ)
			}
		}
	}

	rotated, ok := rotateWithKicks(g, p, 1)
	assert.False(t, ok)
	assert.Equal(t, p, rotated)
}

func TestOPieceNeverKicks(t *testing.T) {
	g := NewGrid(10, 22, 2)

	// O against the left wall rotates in place (identity silhouette).
	p := Piece{Shape: ShapeO, Col: -1, Row: 10}
	require.True(t, g.Fits(p))

	rotated, ok := rotateWithKicks(g, p, 1)
	require.True(t, ok)
	assert.Equal(t, p.Col, rotated.Col)
	assert.Equal(t, p.Row, rotated.Row)
	assert.Equal(t, p.Cells(), rotated.Cells())
}
