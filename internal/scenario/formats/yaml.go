// Package formats provides scenario file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/roverlab/internal/program"
	"github.com/vovakirdan/roverlab/internal/sim"
)

// YAMLScenario represents the YAML structure for a scenario file.
type YAMLScenario struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Board       *YAMLBoard     `yaml:"board,omitempty"`
	Rovers      []YAMLRover    `yaml:"rovers"`
	Buildings   []YAMLBuilding `yaml:"buildings,omitempty"`
	Walls       []YAMLCell     `yaml:"walls,omitempty"`
}

// YAMLBoard overrides the configured board size.
type YAMLBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// YAMLRover is one rover with its program.
type YAMLRover struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Facing   string `yaml:"facing,omitempty"` // defaults to north
	Program  string `yaml:"program,omitempty"`
	Selected bool   `yaml:"selected,omitempty"`
}

// YAMLBuilding is a building anchor cell.
type YAMLBuilding struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// YAMLCell is a single wall cell.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scenario represents a parsed scenario ready for use.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Width       int // 0 keeps the configured width
	Height      int // 0 keeps the configured height
	Rovers      []Rover
	Buildings   []Building
	Walls       []sim.Coord
}

// Rover is a parsed rover entry.
type Rover struct {
	At       sim.Coord
	Facing   sim.Direction
	Program  []sim.ActionType
	Selected bool
}

// Building is a parsed building entry.
type Building struct {
	Kind sim.BuildingKind
	At   sim.Coord
}

// ParseYAML parses a YAML scenario file.
func ParseYAML(data []byte) (Scenario, error) {
	var ys YAMLScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Scenario{}, fmt.Errorf("missing id")
	}

	sc := Scenario{
		ID:          ys.ID,
		Name:        ys.Name,
		Description: ys.Description,
		Rovers:      make([]Rover, 0, len(ys.Rovers)),
		Buildings:   make([]Building, 0, len(ys.Buildings)),
		Walls:       make([]sim.Coord, 0, len(ys.Walls)),
	}
	if sc.Name == "" {
		sc.Name = sc.ID
	}
	if ys.Board != nil {
		if ys.Board.Width <= 0 || ys.Board.Height <= 0 {
			return Scenario{}, fmt.Errorf("board size %dx%d must be positive", ys.Board.Width, ys.Board.Height)
		}
		sc.Width, sc.Height = ys.Board.Width, ys.Board.Height
	}

	for i, yr := range ys.Rovers {
		facing := sim.North
		if yr.Facing != "" {
			d, ok := sim.ParseDirection(yr.Facing)
			if !ok {
				return Scenario{}, fmt.Errorf("rover %d: unknown facing %q", i, yr.Facing)
			}
			facing = d
		}
		actions, err := program.ParseNamed(fmt.Sprintf("%s/rovers[%d]", ys.ID, i), yr.Program)
		if err != nil {
			return Scenario{}, fmt.Errorf("rover %d: %w", i, err)
		}
		sc.Rovers = append(sc.Rovers, Rover{
			At:       sim.C(yr.X, yr.Y),
			Facing:   facing,
			Program:  actions,
			Selected: yr.Selected,
		})
	}

	for i, yb := range ys.Buildings {
		kind, ok := sim.ParseBuildingKind(yb.Kind)
		if !ok {
			return Scenario{}, fmt.Errorf("building %d: unknown kind %q", i, yb.Kind)
		}
		sc.Buildings = append(sc.Buildings, Building{Kind: kind, At: sim.C(yb.X, yb.Y)})
	}

	for _, yw := range ys.Walls {
		sc.Walls = append(sc.Walls, sim.C(yw.X, yw.Y))
	}

	return sc, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
