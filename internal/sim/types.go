// Package sim provides the board model and tick transition for the rover
// simulation. This package is UI-agnostic and deterministic: time is always
// passed in by the caller.
package sim

import "fmt"

// Direction is the facing of a rover.
type Direction uint8

const (
	North Direction = iota
	East
	West
	South
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Right returns the direction after a 90° clockwise turn.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// Left returns the direction after a 90° counter-clockwise turn.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return d
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case South:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection parses a direction name (case-sensitive, lower or title case).
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "North", "n", "N":
		return North, true
	case "east", "East", "e", "E":
		return East, true
	case "west", "West", "w", "W":
		return West, true
	case "south", "South", "s", "S":
		return South, true
	default:
		return North, false
	}
}

// ActionType is a single queued rover instruction.
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionForward
	ActionTurnRight
	ActionTurnLeft
)

// String returns a human-readable name for the action.
func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionTurnRight:
		return "TurnRight"
	case ActionTurnLeft:
		return "TurnLeft"
	default:
		return "Unknown"
	}
}

// Coord is a board coordinate. X grows east, Y grows north.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the coordinate one step away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}
