package tetris

import "time"

// Config holds the engine tuning constants. The values are conventional
// guideline behavior expressed as real durations; the frame-based originals
// they correspond to assume 60 frames per second. They are loaded from YAML
// by the config package and injected here, never hard-coded in game logic.
type Config struct {
	// Board dimensions. HiddenRows buffer rows sit above the visible field
	// for spawn clearance and must be fewer than Rows.
	Cols       int
	Rows       int
	HiddenRows int

	// Progression.
	StartLevel    int
	LinesPerLevel int

	// Grace period before a grounded piece locks (30 frames). Each
	// successful move or rotation while grounded restarts it, at most
	// MaxLockResets times per piece so a piece cannot stall forever.
	LockDelay     time.Duration
	MaxLockResets int

	// Delayed auto shift for held left/right: initial delay (15 frames),
	// then one repeat per interval (3 frames).
	DASDelay    time.Duration
	DASInterval time.Duration

	// Row descent interval while soft drop is held (1 frame).
	SoftDropInterval time.Duration

	// Entry delay between a lock settling and the next piece spawning
	// (25 frames), and the line-clear pause (40 frames).
	EntryDelay time.Duration
	ClearDelay time.Duration

	// Lower bound for the gravity interval at high levels.
	GravityFloor time.Duration
}

// DefaultConfig returns the standard guideline tuning.
func DefaultConfig() Config {
	const frame = time.Second / 60
	return Config{
		Cols:             10,
		Rows:             22,
		HiddenRows:       2,
		StartLevel:       1,
		LinesPerLevel:    10,
		LockDelay:        30 * frame,
		MaxLockResets:    15,
		DASDelay:         15 * frame,
		DASInterval:      3 * frame,
		SoftDropInterval: frame,
		EntryDelay:       25 * frame,
		ClearDelay:       40 * frame,
		GravityFloor:     frame,
	}
}

// sanitize fills zero or nonsensical values with defaults so a partially
// specified config still yields a playable game.
func (c Config) sanitize() Config {
	def := DefaultConfig()
	if c.Cols < 4 {
		c.Cols = def.Cols
	}
	if c.Rows < 8 {
		c.Rows = def.Rows
	}
	if c.HiddenRows < 1 || c.HiddenRows >= c.Rows {
		c.HiddenRows = def.HiddenRows
	}
	if c.StartLevel < 1 {
		c.StartLevel = def.StartLevel
	}
	if c.LinesPerLevel < 1 {
		c.LinesPerLevel = def.LinesPerLevel
	}
	if c.LockDelay <= 0 {
		c.LockDelay = def.LockDelay
	}
	if c.MaxLockResets < 0 {
		c.MaxLockResets = def.MaxLockResets
	}
	if c.DASDelay <= 0 {
		c.DASDelay = def.DASDelay
	}
	if c.DASInterval <= 0 {
		c.DASInterval = def.DASInterval
	}
	if c.SoftDropInterval <= 0 {
		c.SoftDropInterval = def.SoftDropInterval
	}
	if c.EntryDelay <= 0 {
		c.EntryDelay = def.EntryDelay
	}
	if c.ClearDelay <= 0 {
		c.ClearDelay = def.ClearDelay
	}
	if c.GravityFloor <= 0 {
		c.GravityFloor = def.GravityFloor
	}
	return c
}
