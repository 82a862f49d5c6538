package tetris

// Snapshot is the read-only render query: everything a front end needs to
// draw a frame, copied out of the engine so the renderer can never mutate
// game state. Cells includes the hidden buffer rows; renderers draw from row
// HiddenRows down.
type Snapshot struct {
	Cols       int
	Rows       int
	HiddenRows int
	Cells      [][]Shape

	// Active piece, nil PieceCells when no piece is in play (spawning,
	// clearing, game over).
	PieceShape Shape
	PieceCells []Coord

	NextShape Shape

	Score int
	Level int
	Lines int

	State State

	// Rows currently flashing out during the clear phase, ascending.
	ClearingRows []int
}

// Snapshot captures the current game state for rendering and for
// determinism tests.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Cols:       g.grid.Cols(),
		Rows:       g.grid.Rows(),
		HiddenRows: g.grid.HiddenRows(),
		Cells:      g.grid.Snapshot(),
		NextShape:  g.bag.Peek(),
		Score:      g.scoring.Score(),
		Level:      g.scoring.Level(),
		Lines:      g.scoring.Lines(),
		State:      g.state,
	}

	if len(g.clearingRows) > 0 {
		snap.ClearingRows = append([]int(nil), g.clearingRows...)
	}

	if g.pieceInPlay() {
		snap.PieceShape = g.piece.Shape
		cells := g.piece.Cells()
		snap.PieceCells = append([]Coord(nil), cells[:]...)
	}

	return snap
}

// pieceInPlay reports whether an active piece should be drawn, including
// when the game is paused mid-fall.
func (g *Game) pieceInPlay() bool {
	s := g.state
	if s == StatePaused {
		s = g.pausedFrom
	}
	return s == StateFalling || s == StateLocking
}
