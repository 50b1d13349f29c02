package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/roverlab/internal/sim"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points the home directory and working directory at empty temp
// dirs so the developer's own config files don't leak into tests.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg := embedded()
	def := Default()

	if cfg.Source != "embedded" {
		t.Fatalf("embedded default failed to parse, got source %q", cfg.Source)
	}
	cfg.Source = def.Source
	if cfg != def {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, def)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := Default().Settings()
	if s != sim.DefaultSettings() {
		t.Errorf("Default().Settings() = %+v, expected %+v", s, sim.DefaultSettings())
	}
	if got := Default().TickPeriod(); got != time.Second {
		t.Errorf("TickPeriod() = %v, expected 1s", got)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 8 {
		t.Errorf("board = %dx%d, expected 10x8", cfg.Board.Width, cfg.Board.Height)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)
	userPath := filepath.Join(home, ".roverlab", "configs", FileName)
	localPath := filepath.Join(wd, "configs", FileName)

	writeFile(t, localPath, "board: { width: 12 }\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 12 {
		t.Errorf("local config not used: width %d", cfg.Board.Width)
	}

	writeFile(t, userPath, "board: { width: 14 }\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 14 {
		t.Errorf("user config should win over local: width %d", cfg.Board.Width)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "board: { width: 16 }\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 16 || cfg.Source != custom {
		t.Errorf("custom config not used: width %d source %q", cfg.Board.Width, cfg.Source)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "timing:\n  tick_period_seconds: 0.25\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickPeriod() != 250*time.Millisecond {
		t.Errorf("TickPeriod() = %v, expected 250ms", cfg.TickPeriod())
	}
	if cfg.Timing.MineCooldownSeconds != 3.0 {
		t.Errorf("cooldown = %g, expected untouched 3.0", cfg.Timing.MineCooldownSeconds)
	}
	if cfg.Spawn != (Point{X: 4, Y: 2}) {
		t.Errorf("spawn = %+v, expected untouched (4,2)", cfg.Spawn)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board: { width: 3, height: 3 }\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for tiny board, got %v", err)
	}
}

func TestLoadSkipsMalformedSearchFiles(t *testing.T) {
	_, wd := isolate(t)
	writeFile(t, filepath.Join(wd, "configs", FileName), "board: { width: [\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected fallback to embedded", cfg.Source)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Board.Height = -2 }, false},
		{"zero tick period", func(c *Config) { c.Timing.TickPeriodSeconds = 0 }, false},
		{"negative cooldown", func(c *Config) { c.Timing.MineCooldownSeconds = -1 }, false},
		{"spawn outside", func(c *Config) { c.Spawn = Point{X: 10, Y: 2} }, false},
		{"mine on right edge", func(c *Config) { c.StarterMine = Point{X: 9, Y: 5} }, false},
		{"mine on bottom row", func(c *Config) { c.StarterMine = Point{X: 5, Y: 0} }, false},
		{"mine over spawn", func(c *Config) { c.StarterMine = Point{X: 3, Y: 3} }, false},
		{"mine in corner", func(c *Config) { c.StarterMine = Point{X: 8, Y: 1} }, true},
		{"no history database", func(c *Config) { c.History.Database = "" }, false},
		{"small board", func(c *Config) {
			c.Board = BoardConfig{Width: 3, Height: 3}
			c.Spawn = Point{X: 0, Y: 0}
			c.StarterMine = Point{X: 1, Y: 2}
		}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
