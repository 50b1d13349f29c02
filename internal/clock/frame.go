package clock

import (
	"time"

	"github.com/vovakirdan/roverlab/internal/sim"
)

// Frame is an immutable copy of the board published after every mutation.
// Readers may hold on to a frame for as long as they like.
type Frame struct {
	Tick      uint64
	At        time.Time
	Grid      *sim.Grid
	Resources int
	Blocked   int // forward moves blocked since the last reset
	Selected  sim.RoverID
	Running   bool

	// Result is the outcome of the tick that produced this frame, or nil
	// for frames published by resets and reprogramming.
	Result *sim.StepResult
}

func newFrame(b *sim.Board, at time.Time, running bool, result *sim.StepResult) *Frame {
	f := &Frame{
		Tick:      b.TickCount(),
		At:        at,
		Grid:      b.Grid().Clone(),
		Resources: b.Resources(),
		Blocked:   b.BlockedMoves(),
		Running:   running,
		Result:    result,
	}
	if r := b.Selected(); r != nil {
		f.Selected = r.ID()
	}
	return f
}

// SelectedRover returns the selected rover in this frame and its position.
func (f *Frame) SelectedRover() (sim.Coord, *sim.Rover, bool) {
	if f.Selected == 0 {
		return sim.Coord{}, nil, false
	}
	return f.Grid.FindRover(f.Selected)
}
