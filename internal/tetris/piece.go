package tetris

// Coord is an absolute grid position in column/row order. Row 0 is the
// topmost buffer row.
type Coord struct {
	Col, Row int
}

// Piece is the currently falling tetromino: shape identity, rotation state
// and origin position. Pieces are value types; movement and rotation return
// shifted copies so that an illegal placement never leaves partial state
// behind.
type Piece struct {
	Shape    Shape
	Rotation int // 0-3
	Col, Row int // origin (top-left of the bounding box)
}

// Cells returns the four absolute grid positions the piece occupies.
func (p Piece) Cells() [4]Coord {
	offs := p.Shape.Offsets(p.Rotation)
	var cells [4]Coord
	for i, o := range offs {
		cells[i] = Coord{Col: p.Col + o.DCol, Row: p.Row + o.DRow}
	}
	return cells
}

// Shifted returns a copy of the piece moved by the given column and row
// deltas.
func (p Piece) Shifted(dCol, dRow int) Piece {
	p.Col += dCol
	p.Row += dRow
	return p
}

// RotatedRaw returns a copy rotated one step in the given direction
// (+1 clockwise, -1 anticlockwise) with no kick applied. Callers that need
// collision-aware rotation go through Game or rotateWithKicks.
func (p Piece) RotatedRaw(dir int) Piece {
	p.Rotation = (p.Rotation + dir + 4) & 3
	return p
}

// Rows returns the distinct grid rows the piece occupies, in ascending
// order. Used to limit the line-clear scan to rows a lock could complete.
func (p Piece) Rows() []int {
	rows := make([]int, 0, 4)
	for _, c := range p.Cells() {
		seen := false
		for _, r := range rows {
			if r == c.Row {
				seen = true
				break
			}
		}
		if !seen {
			rows = append(rows, c.Row)
		}
	}
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j] < rows[j-1]; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	return rows
}
