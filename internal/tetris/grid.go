package tetris

// Grid is the playfield: a fixed-size matrix of locked cells. The top
// HiddenRows rows form a buffer above the visible field so that pieces can
// spawn partially off-screen. Row 0 is the topmost buffer row.
type Grid struct {
	cols   int
	rows   int
	hidden int
	cells  [][]Shape
}

// NewGrid creates an empty grid with the given dimensions. hidden rows at
// the top are the spawn buffer and must be fewer than rows.
func NewGrid(cols, rows, hidden int) *Grid {
	g := &Grid{cols: cols, rows: rows, hidden: hidden}
	g.cells = make([][]Shape, rows)
	for r := range g.cells {
		g.cells[r] = make([]Shape, cols)
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the total grid height in cells, buffer included.
func (g *Grid) Rows() int { return g.rows }

// HiddenRows returns the number of buffer rows above the visible field.
func (g *Grid) HiddenRows() int { return g.hidden }

// CellAt returns the locked shape at the given position, or ShapeNone when
// the cell is empty or out of bounds.
func (g *Grid) CellAt(col, row int) Shape {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return ShapeNone
	}
	return g.cells[row][col]
}

// InBounds reports whether the position lies within the grid, buffer rows
// included.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Fits reports whether the piece placement is legal: every cell inside
// column bounds, not below the bottom row, not above the top buffer row, and
// not overlapping a locked cell. This is the single collision predicate all
// movement, rotation and gravity go through.
func (g *Grid) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c.Col, c.Row) {
			return false
		}
		if g.cells[c.Row][c.Col] != ShapeNone {
			return false
		}
	}
	return true
}

// Lock copies the piece's cells into the grid. A piece resting entirely
// inside the hidden buffer means the stack has overflowed the visible field:
// Lock then returns true and writes nothing, so a game-ending lock leaves
// the grid exactly as it was.
func (g *Grid) Lock(p Piece) (lockedOut bool) {
	cells := p.Cells()
	lockedOut = true
	for _, c := range cells {
		if c.Row >= g.hidden {
			lockedOut = false
			break
		}
	}
	if lockedOut {
		return true
	}
	for _, c := range cells {
		if g.InBounds(c.Col, c.Row) {
			g.cells[c.Row][c.Col] = p.Shape
		}
	}
	return false
}

// rowFull reports whether every column in the row holds a locked cell.
func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.cols; col++ {
		if g.cells[row][col] == ShapeNone {
			return false
		}
	}
	return true
}

// FullRows scans the given candidate rows and returns those that are
// complete, in ascending order. Rows outside the grid are skipped.
func (g *Grid) FullRows(candidates []int) []int {
	var full []int
	for _, row := range candidates {
		if row >= 0 && row < g.rows && g.rowFull(row) {
			full = append(full, row)
		}
	}
	return full
}

// ClearRows removes the given rows, compacts the remaining rows downward
// preserving their relative order, and inserts that many empty rows at the
// top buffer. Returns the number of rows cleared. Clearing zero rows leaves
// the grid untouched.
func (g *Grid) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	clear := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r >= 0 && r < g.rows {
			clear[r] = true
		}
	}
	if len(clear) == 0 {
		return 0
	}

	kept := make([][]Shape, 0, g.rows)
	for r := 0; r < g.rows; r++ {
		if !clear[r] {
			kept = append(kept, g.cells[r])
		}
	}

	cleared := g.rows - len(kept)
	fresh := make([][]Shape, 0, g.rows)
	for i := 0; i < cleared; i++ {
		fresh = append(fresh, make([]Shape, g.cols))
	}
	g.cells = append(fresh, kept...)
	return cleared
}

// Snapshot returns a deep copy of the cell matrix, buffer rows included.
func (g *Grid) Snapshot() [][]Shape {
	out := make([][]Shape, g.rows)
	for r := range g.cells {
		out[r] = make([]Shape, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// setCell places a locked shape directly. Test helper for building grid
// fixtures without dropping pieces.
func (g *Grid) setCell(col, row int, s Shape) {
	if g.InBounds(col, row) {
		g.cells[row][col] = s
	}
}
