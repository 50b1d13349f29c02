package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for any coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidPlacement is returned when a piece cannot be placed because
	// its footprint is blocked or leaves the board.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrNoRover is returned when an operation needs a selected rover and
	// the board has none.
	ErrNoRover = errors.New("no selected rover")
)

// CoordError records a failed operation at a board coordinate.
type CoordError struct {
	Op  string
	At  Coord
	Err error
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("sim: %s %s: %v", e.Op, e.At, e.Err)
}

func (e *CoordError) Unwrap() error {
	return e.Err
}

// MoveError records a rover move that aborted a tick.
type MoveError struct {
	Rover RoverID
	From  Coord
	To    Coord
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("sim: rover %d move %s -> %s: %v", e.Rover, e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
