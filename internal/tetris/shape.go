// Package tetris implements the game-state engine for blockfall: the
// playfield grid, piece movement and rotation, line clears, scoring, and the
// gravity/input timing model. It contains no rendering or terminal code; the
// platform layer drives it with elapsed time and input events and reads back
// snapshots.
package tetris

import "github.com/arcadehall/blockfall/internal/core"

// Shape identifies one of the seven tetromino kinds. ShapeNone marks an
// empty grid cell, so a zero-valued grid is an empty grid.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of playable shapes (excluding ShapeNone).
const ShapeCount = 7

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "."
	}
}

// Color returns the platform color used to draw the shape's blocks.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeJ:
		return core.ColorBlue
	case ShapeL:
		return core.ColorOrange
	case ShapeO:
		return core.ColorYellow
	case ShapeS:
		return core.ColorGreen
	case ShapeT:
		return core.ColorMagenta
	case ShapeZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Offset is a cell position relative to a piece's origin (top-left of its
// bounding box), in column/row order.
type Offset struct {
	DCol, DRow int
}

// blockOffsets maps each (shape, rotation state) to the four cells the piece
// occupies relative to its origin. States cycle clockwise; shapes whose
// silhouette repeats (I, S, Z every 2 states; O every state) list the cycle
// explicitly so that rotation state arithmetic stays uniform across shapes.
// These tables are fixed constants and must never be mutated.
var blockOffsets = [ShapeCount + 1][4][4]Offset{
	ShapeI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, -1}, {2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{2, -1}, {2, 0}, {2, 1}, {2, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{2, -1}, {1, -1}, {1, 0}, {1, 1}},
		{{2, 1}, {2, 0}, {1, 0}, {0, 0}},
		{{0, 1}, {1, 1}, {1, 0}, {1, -1}},
	},
	ShapeL: {
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 0}, {0, 0}, {0, 1}},
		{{1, 1}, {1, 0}, {1, -1}, {0, -1}},
	},
	ShapeO: {
		{{1, 0}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 0}},
	},
	ShapeS: {
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{2, 0}, {1, -1}, {1, 0}, {1, 1}},
		{{1, 1}, {2, 0}, {1, 0}, {0, 0}},
		{{0, 0}, {1, 1}, {1, 0}, {1, -1}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, -1}, {2, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, -1}, {2, 0}, {1, 0}, {1, 1}},
	},
}

// Offsets returns the four relative cell offsets for the shape at the given
// rotation state (0-3).
func (s Shape) Offsets(rotation int) [4]Offset {
	return blockOffsets[s][rotation&3]
}
