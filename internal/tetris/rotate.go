package tetris

// Rotation kick tables. When a naive rotation collides, the offsets below
// are tried in order and the first legal placement wins; if none fit the
// rotation is rejected and the piece is left unchanged. The tables are
// shape-aware: the long I piece reaches two columns past a wall, while the
// O piece never changes silhouette and needs no kicks at all.
var (
	kicksJLSTZ = []Offset{
		{0, 0},
		{-1, 0},
		{1, 0},
		{0, -1},
	}

	kicksI = []Offset{
		{0, 0},
		{-1, 0},
		{1, 0},
		{-2, 0},
		{2, 0},
		{0, -1},
	}

	kicksO = []Offset{
		{0, 0},
	}
)

// kickTable returns the ordered kick offsets for the shape.
func kickTable(s Shape) []Offset {
	switch s {
	case ShapeI:
		return kicksI
	case ShapeO:
		return kicksO
	default:
		return kicksJLSTZ
	}
}

// rotateWithKicks computes the piece rotated one step in dir (+1 clockwise,
// -1 anticlockwise), applying the first kick offset that yields a legal
// placement on the grid. Returns the rotated piece and true on success, or
// the original piece and false when every kick collides.
func rotateWithKicks(g *Grid, p Piece, dir int) (Piece, bool) {
	rotated := p.RotatedRaw(dir)
	for _, kick := range kickTable(p.Shape) {
		candidate := rotated.Shifted(kick.DCol, kick.DRow)
		if g.Fits(candidate) {
			return candidate, true
		}
	}
	return p, false
}
