// Package scenario provides scenario loading: initial boards described in
// YAML, either shipped in the binary or read from a directory.
// This package depends on sim but sim does not depend on scenario.
package scenario

import (
	"fmt"
	"time"

	"github.com/vovakirdan/roverlab/internal/scenario/formats"
	"github.com/vovakirdan/roverlab/internal/sim"
)

// Scenario represents a complete scenario definition.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Width       int
	Height      int
	Rovers      []formats.Rover
	Buildings   []formats.Building
	Walls       []sim.Coord
	FilePath    string
}

func fromParsed(p formats.Scenario, path string) Scenario {
	return Scenario{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Width:       p.Width,
		Height:      p.Height,
		Rovers:      p.Rovers,
		Buildings:   p.Buildings,
		Walls:       p.Walls,
		FilePath:    path,
	}
}

// Settings applies the scenario's board size, if any, to s.
func (sc *Scenario) Settings(s sim.Settings) sim.Settings {
	if sc.Width > 0 && sc.Height > 0 {
		s.Width, s.Height = sc.Width, sc.Height
	}
	return s
}

// Build creates a board from the scenario. Buildings are placed first,
// then walls, then rovers in file order. The rover marked selected is
// selected; otherwise the first rover is.
func (sc *Scenario) Build(s sim.Settings, now time.Time) (*sim.Board, error) {
	settings := sc.Settings(s)
	b := sim.NewBoard(settings)

	for i, bs := range sc.Buildings {
		bd := sim.NewBuilding(bs.Kind, now, settings.MineCooldown)
		if err := b.PlaceBuilding(bd, bs.At.X, bs.At.Y); err != nil {
			return nil, fmt.Errorf("scenario %s: building %d: %w", sc.ID, i, err)
		}
	}

	for _, w := range sc.Walls {
		if err := b.PlaceWall(w.X, w.Y); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.ID, err)
		}
	}

	for i, rs := range sc.Rovers {
		r := sim.NewRoverWithActions(rs.Program)
		r.SetDirection(rs.Facing)
		if err := b.PlaceRover(r, rs.At.X, rs.At.Y); err != nil {
			return nil, fmt.Errorf("scenario %s: rover %d: %w", sc.ID, i, err)
		}
		if rs.Selected {
			if err := b.Select(r.ID()); err != nil {
				return nil, fmt.Errorf("scenario %s: rover %d: %w", sc.ID, i, err)
			}
		}
	}

	return b, nil
}
