package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/roverlab/internal/config"
	"github.com/vovakirdan/roverlab/internal/registry"
	"github.com/vovakirdan/roverlab/internal/scenario"
	"github.com/vovakirdan/roverlab/internal/sim"
)

// loadConfig loads the config named by --config or found on the search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded",
		"source", cfg.Source,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"tick", cfg.TickPeriod(),
	)
	return cfg, nil
}

// useColor decides whether output to f gets terminal colors.
func useColor(f *os.File) (bool, error) {
	switch flagColor {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: want auto, always or never", flagColor)
	}
}

// buildBoard creates the starting board for a scenario. A path given with
// --file wins; otherwise id is looked up in the registry and then in the
// --scenarios directory.
func buildBoard(id, file string, s sim.Settings, now time.Time) (*sim.Board, string, error) {
	if file != "" {
		sc, err := scenario.LoadFile(file)
		if err != nil {
			return nil, "", err
		}
		b, err := sc.Build(s, now)
		return b, sc.Name, err
	}

	if registry.Exists(id) {
		b, err := registry.Create(id, s, now)
		return b, id, err
	}

	if flagScenarios != "" {
		sc, err := scenario.NewLoader(flagScenarios).LoadByID(id)
		if err == nil {
			b, err := sc.Build(s, now)
			return b, sc.Name, err
		}
		if !errors.Is(err, scenario.ErrNotFound) {
			return nil, "", err
		}
	}

	return nil, "", fmt.Errorf("unknown scenario %q (run 'roverlab list' to see available scenarios)", id)
}

// terminalWidth returns the width of f, or 0 if f is not a terminal.
func terminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil {
		return w
	}
	return 0
}
