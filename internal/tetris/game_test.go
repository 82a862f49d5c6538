package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadehall/blockfall/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(DefaultConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func press(a core.Action) []core.InputEvent {
	return []core.InputEvent{core.Pressed(a)}
}

func tap(a core.Action) []core.InputEvent {
	return []core.InputEvent{core.Pressed(a), core.Released(a)}
}

func TestFirstPieceSpawnsWithoutEntryDelay(t *testing.T) {
	g := newTestGame(1)
	require.Equal(t, StateSpawning, g.state)

	g.Advance(0, nil)

	assert.Equal(t, StateFalling, g.state)
	assert.NotEqual(t, ShapeNone, g.piece.Shape)
	assert.Equal(t, g.cfg.HiddenRows, g.piece.Row)
	assert.Equal(t, (g.cfg.Cols-4)/2, g.piece.Col)
}

func TestGravityDescendsOneRowPerInterval(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	start := g.piece.Row

	// Level 1 gravity is one row per second; a partial interval carries.
	g.Advance(time.Second, nil)
	assert.Equal(t, start+1, g.piece.Row)

	g.Advance(500*time.Millisecond, nil)
	assert.Equal(t, start+1, g.piece.Row)

	g.Advance(500*time.Millisecond, nil)
	assert.Equal(t, start+2, g.piece.Row)
}

func TestSoftDropScoresOnePointPerRow(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	start := g.piece.Row

	g.Advance(0, press(core.ActionSoftDrop))
	g.Advance(5*g.cfg.SoftDropInterval, nil)

	assert.Equal(t, start+5, g.piece.Row)
	assert.Equal(t, 5, g.scoring.Score())

	// Releasing soft drop restores the level curve.
	g.Advance(0, []core.InputEvent{core.Released(core.ActionSoftDrop)})
	g.Advance(5*g.cfg.SoftDropInterval, nil)
	assert.Equal(t, start+5, g.piece.Row)
	assert.Equal(t, 5, g.scoring.Score())
}

func TestPauseFreezesTimersExactly(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	start := g.piece.Row

	g.Advance(600*time.Millisecond, nil)
	require.Equal(t, start, g.piece.Row)

	g.Advance(0, press(core.ActionPause))
	require.Equal(t, StatePaused, g.state)
	assert.True(t, g.State().Paused)

	// Time spent paused must not count toward gravity.
	g.Advance(10*time.Second, nil)
	assert.Equal(t, start, g.piece.Row)

	g.Advance(0, press(core.ActionPause))
	require.Equal(t, StateFalling, g.state)

	// 600ms accumulated before the pause plus 400ms now is exactly one row.
	g.Advance(400*time.Millisecond, nil)
	assert.Equal(t, start+1, g.piece.Row)
	g.Advance(999*time.Millisecond, nil)
	assert.Equal(t, start+1, g.piece.Row)
}

func TestPauseIgnoresMoveInput(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	col := g.piece.Col

	g.Advance(0, press(core.ActionPause))
	g.Advance(0, tap(core.ActionMoveLeft))
	g.Advance(0, tap(core.ActionRotateCW))
	assert.Equal(t, col, g.piece.Col)
	assert.Equal(t, 0, g.piece.Rotation)

	// Soft drop held across a pause stays held and resumes with the game.
	g.Advance(0, press(core.ActionPause))
	g.Advance(0, press(core.ActionSoftDrop))
	g.Advance(0, press(core.ActionPause))
	row := g.piece.Row
	g.Advance(10*time.Second, nil)
	require.Equal(t, row, g.piece.Row)
	g.Advance(0, press(core.ActionPause))
	g.Advance(5*g.cfg.SoftDropInterval, nil)
	assert.Equal(t, row+5, g.piece.Row)
}

func TestPauseFreezesHeldDirectionRepeat(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	g.piece = Piece{Shape: ShapeO, Col: 4, Row: g.cfg.HiddenRows}

	// Hold left to within 10ms of the first auto repeat, then pause.
	g.Advance(0, press(core.ActionMoveLeft))
	require.Equal(t, 3, g.piece.Col)
	g.Advance(g.cfg.DASDelay-10*time.Millisecond, nil)
	require.Equal(t, 3, g.piece.Col)

	g.Advance(0, press(core.ActionPause))
	g.Advance(time.Minute, nil)
	require.Equal(t, 3, g.piece.Col)

	// The accumulator survives the pause; 10ms after resuming the first
	// repeat fires.
	g.Advance(0, press(core.ActionPause))
	g.Advance(10*time.Millisecond, nil)
	assert.Equal(t, 2, g.piece.Col)
}

func TestSpawnCollisionEndsGameWithoutWriting(t *testing.T) {
	g := newTestGame(1)

	// Fill every cell the spawn origin and its one-row-up retry could use.
	for row := 1; row <= 3; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			g.grid.setCell(col, row, ShapeZ)
		}
	}
	before := g.grid.Snapshot()

	g.Advance(0, nil)

	assert.Equal(t, StateGameOver, g.state)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, before, g.grid.Snapshot(), "a failed spawn must not mutate the grid")
}

func TestLockDelayThenEntryDelay(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)

	// Walk the piece to the floor one gravity step at a time so the lock
	// timer starts from zero.
	for i := 0; i < g.cfg.Rows; i++ {
		g.Advance(time.Second, nil)
		if g.state == StateLocking {
			break
		}
	}
	require.Equal(t, StateLocking, g.state)

	g.Advance(g.cfg.LockDelay/2, nil)
	require.Equal(t, StateLocking, g.state)

	g.Advance(g.cfg.LockDelay/2, nil)
	require.Equal(t, StateSpawning, g.state, "flat ground, no lines to clear")

	locked := 0
	for row := 0; row < g.cfg.Rows; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			if g.grid.CellAt(col, row) != ShapeNone {
				locked++
			}
		}
	}
	assert.Equal(t, 4, locked)

	// The next piece waits out the entry delay.
	g.Advance(g.cfg.EntryDelay/2, nil)
	assert.Equal(t, StateSpawning, g.state)
	g.Advance(g.cfg.EntryDelay/2, nil)
	assert.Equal(t, StateFalling, g.state)
}

func TestLockDelayResetsAreBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLockResets = 1
	g := &Game{cfg: cfg.sanitize()}
	rc := core.DefaultConfig()
	rc.Seed = 1
	g.Reset(rc)
	g.Advance(0, nil)

	for i := 0; i < g.cfg.Rows; i++ {
		g.Advance(time.Second, nil)
		if g.state == StateLocking {
			break
		}
	}
	require.Equal(t, StateLocking, g.state)

	// First grounded move restarts the lock timer.
	g.Advance(g.cfg.LockDelay/2, nil)
	g.Advance(0, tap(core.ActionMoveLeft))
	require.Equal(t, StateLocking, g.state)
	g.Advance(g.cfg.LockDelay/2, nil)
	require.Equal(t, StateLocking, g.state, "reset should have bought more time")

	// The budget is spent, so the next move does not restart it.
	g.Advance(0, tap(core.ActionMoveRight))
	g.Advance(g.cfg.LockDelay/2, nil)
	assert.NotEqual(t, StateLocking, g.state, "piece should have locked")
}

func TestSoftDropWhileGroundedLocksImmediately(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)

	for i := 0; i < g.cfg.Rows; i++ {
		g.Advance(time.Second, nil)
		if g.state == StateLocking {
			break
		}
	}
	require.Equal(t, StateLocking, g.state)

	g.Advance(0, press(core.ActionSoftDrop))
	assert.Equal(t, StateSpawning, g.state)
}

func TestLineClearScoresAndCollapses(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)

	// Bottom row full except the rightmost column; a vertical I drops into
	// the gap clearing exactly one line.
	for col := 0; col < g.cfg.Cols-1; col++ {
		g.grid.setCell(col, g.cfg.Rows-1, ShapeZ)
	}
	g.piece = Piece{Shape: ShapeI, Rotation: 1, Col: 7, Row: g.cfg.HiddenRows}
	require.True(t, g.grid.Fits(g.piece))

	g.Advance(0, press(core.ActionSoftDrop))
	g.Advance(time.Duration(g.cfg.Rows)*g.cfg.SoftDropInterval, nil)
	require.Equal(t, StateLocking, g.state)
	g.Advance(g.cfg.LockDelay, nil)

	require.Equal(t, StateClearing, g.state)
	assert.Equal(t, []int{g.cfg.Rows - 1}, g.clearingRows)

	g.Advance(g.cfg.ClearDelay/2, nil)
	require.Equal(t, StateClearing, g.state)
	g.Advance(g.cfg.ClearDelay/2, nil)
	require.Equal(t, StateSpawning, g.state)

	st := g.State()
	assert.Equal(t, 1, st.Lines)
	assert.Greater(t, st.Score, 0)

	// The three I cells above the cleared row collapse one row down.
	assert.Equal(t, ShapeI, g.grid.CellAt(9, g.cfg.Rows-1))
	assert.Equal(t, ShapeI, g.grid.CellAt(9, g.cfg.Rows-2))
	assert.Equal(t, ShapeI, g.grid.CellAt(9, g.cfg.Rows-3))
	assert.Equal(t, ShapeNone, g.grid.CellAt(9, g.cfg.Rows-4))
	assert.Equal(t, ShapeNone, g.grid.CellAt(0, g.cfg.Rows-1))
}

func TestHeldDirectionAutoRepeats(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	g.piece = Piece{Shape: ShapeO, Col: 4, Row: g.cfg.HiddenRows}

	// Immediate move on press, then repeats after the initial delay.
	g.Advance(0, press(core.ActionMoveLeft))
	assert.Equal(t, 3, g.piece.Col)

	g.Advance(g.cfg.DASDelay, nil)
	assert.Equal(t, 2, g.piece.Col)

	g.Advance(3*g.cfg.DASInterval, nil)
	assert.Equal(t, -1, g.piece.Col, "O cells sit at origin+1/+2, so -1 hugs the wall")

	// Further repeats are blocked by the wall but harmless.
	g.Advance(3*g.cfg.DASInterval, nil)
	assert.Equal(t, -1, g.piece.Col)

	// Release stops the repeats.
	g.Advance(0, []core.InputEvent{core.Released(core.ActionMoveLeft)})
	g.Advance(g.cfg.DASDelay, nil)
	assert.Equal(t, -1, g.piece.Col)
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)
	g.piece = Piece{Shape: ShapeO, Col: 4, Row: g.cfg.HiddenRows}

	g.Advance(0, press(core.ActionMoveLeft))
	require.Equal(t, 3, g.piece.Col)

	// Pressing right releases the left hold.
	g.Advance(0, press(core.ActionMoveRight))
	require.Equal(t, 4, g.piece.Col)
	g.Advance(g.cfg.DASDelay, nil)
	assert.Equal(t, 5, g.piece.Col, "only the right hold should repeat")
}

func TestRestartResetsEverything(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)

	g.Advance(0, press(core.ActionSoftDrop))
	g.Advance(3*g.cfg.SoftDropInterval, nil)
	require.Greater(t, g.scoring.Score(), 0)

	g.Advance(0, press(core.ActionRestart))
	g.Advance(0, nil)

	st := g.State()
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 0, st.Lines)
	assert.Equal(t, g.cfg.StartLevel, st.Level)
	assert.False(t, st.GameOver)
	assert.Equal(t, StateFalling, g.state)

	for row := 0; row < g.cfg.Rows; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			assert.Equal(t, ShapeNone, g.grid.CellAt(col, row))
		}
	}
}

func TestRestartWorksAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	for row := 1; row <= 3; row++ {
		for col := 0; col < g.cfg.Cols; col++ {
			g.grid.setCell(col, row, ShapeZ)
		}
	}
	g.Advance(0, nil)
	require.Equal(t, StateGameOver, g.state)

	// All input except restart is dead.
	g.Advance(time.Second, tap(core.ActionMoveLeft))
	require.Equal(t, StateGameOver, g.state)

	g.Advance(0, press(core.ActionRestart))
	g.Advance(0, nil)
	assert.Equal(t, StateFalling, g.state)
	assert.Equal(t, ShapeNone, g.grid.CellAt(0, 1))
}

func TestSameSeedSameScriptIsDeterministic(t *testing.T) {
	script := func(g *Game) {
		g.Advance(0, nil)
		g.Advance(0, tap(core.ActionMoveLeft))
		g.Advance(time.Second, nil)
		g.Advance(0, tap(core.ActionRotateCW))
		g.Advance(0, press(core.ActionSoftDrop))
		g.Advance(30*g.cfg.SoftDropInterval, nil)
		g.Advance(g.cfg.LockDelay, nil)
		g.Advance(g.cfg.EntryDelay, nil)
		g.Advance(2*time.Second, nil)
	}

	a := newTestGame(12345)
	b := newTestGame(12345)
	script(a)
	script(b)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Equal(t, a.State(), b.State())
}

func TestSnapshotReflectsPieceAndQueue(t *testing.T) {
	g := newTestGame(1)
	g.Advance(0, nil)

	snap := g.Snapshot()
	assert.Equal(t, g.cfg.Cols, snap.Cols)
	assert.Equal(t, g.cfg.Rows, snap.Rows)
	assert.Equal(t, g.cfg.HiddenRows, snap.HiddenRows)
	assert.Equal(t, g.piece.Shape, snap.PieceShape)
	cells := g.piece.Cells()
	assert.Equal(t, cells[:], snap.PieceCells)
	assert.Equal(t, g.bag.Peek(), snap.NextShape)
	assert.Equal(t, StateFalling, snap.State)

	// Mutating the snapshot must not touch the live grid.
	snap.Cells[0][0] = ShapeI
	assert.Equal(t, ShapeNone, g.grid.CellAt(0, 0))
}
