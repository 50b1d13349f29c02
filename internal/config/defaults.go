package config

import (
	_ "embed"
)

//go:embed defaults/roverlab.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/roverlab.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 8,
		},
		Spawn: Point{
			X: 4,
			Y: 2,
		},
		StarterMine: Point{
			X: 5,
			Y: 5,
		},
		Timing: TimingConfig{
			TickPeriodSeconds:   1.0,
			MineCooldownSeconds: 3.0,
		},
		History: HistoryConfig{
			Database: "~/.roverlab/runs.db",
		},
		Source: "default",
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
