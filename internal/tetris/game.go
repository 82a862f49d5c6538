package tetris

import (
	"math/rand"
	"time"

	"github.com/arcadehall/blockfall/internal/core"
)

// State is the engine's phase tag. The normal cycle is Spawning -> Falling
// -> Locking -> Clearing -> Spawning; Paused suspends any non-terminal phase
// with timers intact, and GameOver is terminal until a restart.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateClearing
	StatePaused
	StateGameOver
)

// String returns a display tag for the state.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is a single engine instance owned by the caller. All mutation happens
// synchronously inside Advance; the engine is not reentrant and the caller
// must serialize calls.
type Game struct {
	cfg     Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	grid    *Grid
	bag     *Bag
	piece   Piece
	scoring *Scoring

	state      State
	pausedFrom State

	// Phase timers, all in accumulated real time.
	gravity      intervalTimer
	lockElapsed  time.Duration
	lockResets   int
	entryElapsed time.Duration
	clearElapsed time.Duration
	clearingRows []int

	// Input hold state.
	dasLeft  repeatTimer
	dasRight repeatTimer
	softHeld bool
}

// New creates a game with the given tuning and initializes it with default
// runtime settings. Callers normally Reset with their own RuntimeConfig
// before the first Advance.
func New(cfg Config) *Game {
	g := &Game{cfg: cfg.sanitize()}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset discards all state and returns the game to the initial spawning
// phase. A zero seed picks a time-based one.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.grid = NewGrid(g.cfg.Cols, g.cfg.Rows, g.cfg.HiddenRows)
	g.bag = NewBag(g.rng.Int63())
	g.scoring = NewScoring(g.cfg.StartLevel, g.cfg.LinesPerLevel)

	g.state = StateSpawning
	g.pausedFrom = StateSpawning
	// Skip the entry delay for the very first piece.
	g.entryElapsed = g.cfg.EntryDelay
	g.clearElapsed = 0
	g.clearingRows = nil
	g.lockElapsed = 0
	g.lockResets = 0
	g.gravity.reset()

	g.dasLeft = repeatTimer{delay: g.cfg.DASDelay, interval: g.cfg.DASInterval}
	g.dasRight = repeatTimer{delay: g.cfg.DASDelay, interval: g.cfg.DASInterval}
	g.softHeld = false
}

// Advance drives the engine by one tick: the ordered input events are
// applied first, then elapsed real time feeds the gravity, lock-delay and
// auto-repeat timers. Illegal moves are silently rejected; unrecognized
// events are ignored.
func (g *Game) Advance(elapsed time.Duration, events []core.InputEvent) core.StepResult {
	for _, ev := range events {
		g.handleEvent(ev)
	}

	if g.state == StatePaused || g.state == StateGameOver {
		return g.result()
	}

	// Held-direction auto repeats. Blocked repeats are no-ops.
	for n := g.dasLeft.advance(elapsed); n > 0; n-- {
		g.tryShift(-1)
	}
	for n := g.dasRight.advance(elapsed); n > 0; n-- {
		g.tryShift(1)
	}

	switch g.state {
	case StateSpawning:
		g.advanceSpawning(elapsed)
	case StateFalling, StateLocking:
		g.advanceFalling(elapsed)
	case StateClearing:
		g.advanceClearing(elapsed)
	}

	return g.result()
}

// handleEvent applies a single press or release.
func (g *Game) handleEvent(ev core.InputEvent) {
	if ev.Kind == core.Press {
		switch ev.Action {
		case core.ActionRestart:
			g.restart()
			return
		case core.ActionPause:
			g.togglePause()
			return
		}
	}

	if g.state == StatePaused || g.state == StateGameOver {
		return
	}

	switch ev.Kind {
	case core.Press:
		switch ev.Action {
		case core.ActionMoveLeft:
			// Left and right cannot be held simultaneously.
			g.dasRight.release()
			g.dasLeft.press()
			g.tryShift(-1)
		case core.ActionMoveRight:
			g.dasLeft.release()
			g.dasRight.press()
			g.tryShift(1)
		case core.ActionSoftDrop:
			g.softHeld = true
			g.gravity.reset()
			if g.state == StateLocking {
				// Soft drop on a grounded piece cancels the lock delay.
				g.lockPiece()
			}
		case core.ActionRotateCW:
			g.tryRotate(1)
		case core.ActionRotateCCW:
			g.tryRotate(-1)
		}
	case core.Release:
		switch ev.Action {
		case core.ActionMoveLeft:
			g.dasLeft.release()
		case core.ActionMoveRight:
			g.dasRight.release()
		case core.ActionSoftDrop:
			g.softHeld = false
			g.gravity.reset()
		}
	}
}

// togglePause suspends or resumes the game. All timers, including the
// auto-repeat accumulators of held directions, keep their accumulated values
// across the pause and resume from exactly where they stopped.
func (g *Game) togglePause() {
	switch g.state {
	case StateGameOver:
		return
	case StatePaused:
		g.state = g.pausedFrom
	default:
		g.pausedFrom = g.state
		g.state = StatePaused
	}
}

// restart begins a fresh game, deriving a new seed from the current RNG so
// consecutive games differ while a seeded session stays reproducible.
func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	g.Reset(rc)
}

// advanceSpawning waits out the entry delay, then dequeues the next shape
// and places it at the spawn origin. A spawn that collides even after the
// one-row-up retry is an immediate game over with no grid mutation.
func (g *Game) advanceSpawning(elapsed time.Duration) {
	g.entryElapsed += elapsed
	if g.entryElapsed < g.cfg.EntryDelay {
		return
	}

	p := Piece{
		Shape: g.bag.Next(),
		Col:   (g.cfg.Cols - 4) / 2,
		Row:   g.cfg.HiddenRows,
	}
	if !g.grid.Fits(p) {
		// Allow the piece to spawn one row higher, into the buffer.
		up := p.Shifted(0, -1)
		if !g.grid.Fits(up) {
			g.state = StateGameOver
			return
		}
		p = up
	}

	g.piece = p
	g.lockResets = 0
	g.lockElapsed = 0
	g.gravity.reset()
	g.state = StateFalling
}

// advanceFalling runs gravity while the piece can descend and the lock-delay
// grace period once it cannot.
func (g *Game) advanceFalling(elapsed time.Duration) {
	wasLocking := g.state == StateLocking
	if g.state == StateFalling {
		for n := g.gravity.advance(elapsed, g.fallInterval()); n > 0; n-- {
			down := g.piece.Shifted(0, 1)
			if !g.grid.Fits(down) {
				g.enterLocking()
				break
			}
			g.piece = down
			if g.softHeld {
				g.scoring.AddSoftDropPoints(1)
			}
		}
	}

	// Time spent falling within this tick does not count against the lock
	// delay; counting starts on the tick after the piece grounds.
	if g.state == StateLocking && wasLocking {
		g.lockElapsed += elapsed
		if g.lockElapsed >= g.cfg.LockDelay {
			g.lockPiece()
		}
	}
}

// advanceClearing waits out the clear delay, then removes the full rows and
// scores the lock event.
func (g *Game) advanceClearing(elapsed time.Duration) {
	g.clearElapsed += elapsed
	if g.clearElapsed < g.cfg.ClearDelay {
		return
	}

	n := g.grid.ClearRows(g.clearingRows)
	g.scoring.ScoreLines(n)
	g.clearingRows = nil
	g.enterSpawning()
}

// enterLocking starts the lock-delay grace period for a grounded piece.
func (g *Game) enterLocking() {
	g.state = StateLocking
	g.lockElapsed = 0
}

// enterSpawning starts the entry delay for the next piece.
func (g *Game) enterSpawning() {
	g.state = StateSpawning
	g.entryElapsed = 0
}

// lockPiece writes the piece into the grid and moves on to clearing or the
// next spawn. Locking entirely inside the hidden buffer means the stack has
// overflowed: game over.
func (g *Game) lockPiece() {
	if g.grid.Lock(g.piece) {
		g.state = StateGameOver
		return
	}

	full := g.grid.FullRows(g.piece.Rows())
	if len(full) == 0 {
		g.enterSpawning()
		return
	}
	g.clearingRows = full
	g.clearElapsed = 0
	g.state = StateClearing
}

// tryShift attempts a one-column horizontal move. Blocked moves leave state
// unchanged.
func (g *Game) tryShift(dCol int) {
	if g.state != StateFalling && g.state != StateLocking {
		return
	}
	moved := g.piece.Shifted(dCol, 0)
	if !g.grid.Fits(moved) {
		return
	}
	g.piece = moved
	g.afterSuccessfulMove()
}

// tryRotate attempts a rotation with kicks. A rejected rotation leaves the
// piece untouched.
func (g *Game) tryRotate(dir int) {
	if g.state != StateFalling && g.state != StateLocking {
		return
	}
	rotated, ok := rotateWithKicks(g.grid, g.piece, dir)
	if !ok {
		return
	}
	g.piece = rotated
	g.afterSuccessfulMove()
}

// afterSuccessfulMove updates lock-delay bookkeeping after a slide or
// rotation. A piece moved off a ledge resumes falling; a still-grounded
// piece earns a bounded lock-delay reset.
func (g *Game) afterSuccessfulMove() {
	if g.state != StateLocking {
		return
	}
	if g.grid.Fits(g.piece.Shifted(0, 1)) {
		g.state = StateFalling
		g.gravity.reset()
		return
	}
	if g.lockResets < g.cfg.MaxLockResets {
		g.lockResets++
		g.lockElapsed = 0
	}
}

// fallInterval is the current gravity interval: the level curve normally,
// the soft-drop interval while soft drop is held.
func (g *Game) fallInterval() time.Duration {
	if g.softHeld {
		return g.cfg.SoftDropInterval
	}
	return FallInterval(g.scoring.Level(), g.cfg.GravityFloor)
}

// result reports the coarse state for the platform.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State: core.GameState{
			Score:    g.scoring.Score(),
			Level:    g.scoring.Level(),
			Lines:    g.scoring.Lines(),
			GameOver: g.state == StateGameOver,
			Paused:   g.state == StatePaused,
		},
	}
}

// State returns the coarse game state for the platform.
func (g *Game) State() core.GameState {
	return g.result().State
}
