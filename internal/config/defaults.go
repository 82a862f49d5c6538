package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration. Timings match
// conventional guideline values at 60 frames per second, rounded to whole
// milliseconds.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols:       10,
			Rows:       22,
			HiddenRows: 2,
		},
		Progression: ProgressionConfig{
			StartLevel:    1,
			LinesPerLevel: 10,
		},
		Timing: TimingConfig{
			LockDelayMs:        500,
			MaxLockResets:      15,
			DASDelayMs:         250,
			DASIntervalMs:      50,
			SoftDropIntervalMs: 17,
			EntryDelayMs:       417,
			ClearDelayMs:       667,
			GravityFloorMs:     17,
		},
	}
}
