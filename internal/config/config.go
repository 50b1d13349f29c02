// Package config provides YAML-based configuration loading for the rover
// simulation: board size, spawn point, starter mine, timing and the
// run history database.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/roverlab/internal/sim"
)

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a simulation run.
type Config struct {
	Board       BoardConfig   `yaml:"board"`
	Spawn       Point         `yaml:"spawn"`
	StarterMine Point         `yaml:"starter_mine"`
	Timing      TimingConfig  `yaml:"timing"`
	History     HistoryConfig `yaml:"history"`

	// Source names where the config came from: a file path or "embedded".
	Source string `yaml:"-"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point is a board cell.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the clock and cooldown periods, in seconds.
type TimingConfig struct {
	TickPeriodSeconds   float64 `yaml:"tick_period_seconds"`
	MineCooldownSeconds float64 `yaml:"mine_cooldown_seconds"`
}

// HistoryConfig locates the run history database.
type HistoryConfig struct {
	// Database is the SQLite file path. A leading ~ expands to the home directory.
	Database string `yaml:"database"`
}

// TickPeriod returns the tick period as a duration.
func (c Config) TickPeriod() time.Duration {
	return seconds(c.Timing.TickPeriodSeconds)
}

// MineCooldown returns the mine cooldown as a duration.
func (c Config) MineCooldown() time.Duration {
	return seconds(c.Timing.MineCooldownSeconds)
}

// Settings converts the config into board settings.
func (c Config) Settings() sim.Settings {
	return sim.Settings{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Spawn:        sim.C(c.Spawn.X, c.Spawn.Y),
		StarterMine:  sim.C(c.StarterMine.X, c.StarterMine.Y),
		MineCooldown: c.MineCooldown(),
	}
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	w, h := c.Board.Width, c.Board.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: board size %dx%d must be positive", ErrInvalid, w, h)
	}
	if c.Timing.TickPeriodSeconds <= 0 {
		return fmt.Errorf("%w: tick_period_seconds must be positive, got %g", ErrInvalid, c.Timing.TickPeriodSeconds)
	}
	if c.Timing.MineCooldownSeconds <= 0 {
		return fmt.Errorf("%w: mine_cooldown_seconds must be positive, got %g", ErrInvalid, c.Timing.MineCooldownSeconds)
	}

	inside := func(p Point) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}
	if !inside(c.Spawn) {
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d board", ErrInvalid, c.Spawn.X, c.Spawn.Y, w, h)
	}

	for _, cell := range sim.Footprint(c.StarterMine.X, c.StarterMine.Y) {
		p := Point{X: cell.X, Y: cell.Y}
		if !inside(p) {
			return fmt.Errorf("%w: starter mine at (%d,%d) covers (%d,%d) outside %dx%d board",
				ErrInvalid, c.StarterMine.X, c.StarterMine.Y, p.X, p.Y, w, h)
		}
		if p == c.Spawn {
			return fmt.Errorf("%w: starter mine at (%d,%d) covers spawn (%d,%d)",
				ErrInvalid, c.StarterMine.X, c.StarterMine.Y, p.X, p.Y)
		}
	}
	if c.History.Database == "" {
		return fmt.Errorf("%w: history.database must be set", ErrInvalid)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
