// Package config provides YAML-based game configuration loading for
// blockfall. Durations are expressed in whole milliseconds in the files and
// converted to time.Duration when handed to the engine.
package config

import (
	"time"

	"github.com/arcadehall/blockfall/internal/tetris"
)

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Progression ProgressionConfig `yaml:"progression"`
	Timing      TimingConfig      `yaml:"timing"`
}

// BoardConfig defines the playfield dimensions. HiddenRows is counted as
// part of Rows and sits above the visible field.
type BoardConfig struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	HiddenRows int `yaml:"hidden_rows"`
}

// ProgressionConfig defines level start and advancement.
type ProgressionConfig struct {
	StartLevel    int `yaml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TimingConfig defines the engine timers, in milliseconds.
type TimingConfig struct {
	LockDelayMs        int `yaml:"lock_delay_ms"`
	MaxLockResets      int `yaml:"max_lock_resets"`
	DASDelayMs         int `yaml:"das_delay_ms"`
	DASIntervalMs      int `yaml:"das_interval_ms"`
	SoftDropIntervalMs int `yaml:"soft_drop_interval_ms"`
	EntryDelayMs       int `yaml:"entry_delay_ms"`
	ClearDelayMs       int `yaml:"clear_delay_ms"`
	GravityFloorMs     int `yaml:"gravity_floor_ms"`
}

// ToEngine converts the file representation into the engine's tuning
// struct. Zero or missing values are filled with engine defaults.
func (c TetrisConfig) ToEngine() tetris.Config {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return tetris.Config{
		Cols:             c.Board.Cols,
		Rows:             c.Board.Rows,
		HiddenRows:       c.Board.HiddenRows,
		StartLevel:       c.Progression.StartLevel,
		LinesPerLevel:    c.Progression.LinesPerLevel,
		LockDelay:        ms(c.Timing.LockDelayMs),
		MaxLockResets:    c.Timing.MaxLockResets,
		DASDelay:         ms(c.Timing.DASDelayMs),
		DASInterval:      ms(c.Timing.DASIntervalMs),
		SoftDropInterval: ms(c.Timing.SoftDropIntervalMs),
		EntryDelay:       ms(c.Timing.EntryDelayMs),
		ClearDelay:       ms(c.Timing.ClearDelayMs),
		GravityFloor:     ms(c.Timing.GravityFloorMs),
	}
}
