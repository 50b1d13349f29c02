package sim

import (
	"fmt"
	"time"
)

// Settings are the compiled-in constants of the board, made overridable.
type Settings struct {
	Width        int
	Height       int
	Spawn        Coord
	StarterMine  Coord
	MineCooldown time.Duration
}

// DefaultSettings returns the stock 10x8 board.
func DefaultSettings() Settings {
	return Settings{
		Width:        10,
		Height:       8,
		Spawn:        C(4, 2),
		StarterMine:  C(5, 5),
		MineCooldown: DefaultMineCooldown,
	}
}

// Board owns the grid and everything placed on it.
// A Board is not safe for concurrent use; see the clock package for a
// driver that serializes access and publishes snapshots.
type Board struct {
	settings  Settings
	grid      *Grid
	selected  RoverID
	nextID    RoverID
	tick      uint64
	resources int
	blocked   int
}

// NewBoard creates a board with every tile open.
func NewBoard(s Settings) *Board {
	if s.MineCooldown <= 0 {
		s.MineCooldown = DefaultMineCooldown
	}
	return &Board{
		settings: s,
		grid:     NewGrid(s.Width, s.Height),
	}
}

// NewStarterBoard creates a board in its starting layout.
func NewStarterBoard(s Settings, now time.Time) (*Board, error) {
	b := NewBoard(s)
	if err := b.PlaceStarterState(now); err != nil {
		return nil, err
	}
	return b, nil
}

// Settings returns the board settings.
func (b *Board) Settings() Settings {
	return b.settings
}

// Grid returns the live grid. It must not be modified by callers.
func (b *Board) Grid() *Grid {
	return b.grid
}

// TickCount returns the number of completed ticks since the last reset.
func (b *Board) TickCount() uint64 {
	return b.tick
}

// Resources returns the total resources picked up since the last reset.
func (b *Board) Resources() int {
	return b.resources
}

// BlockedMoves returns the number of forward moves blocked since the last
// reset.
func (b *Board) BlockedMoves() int {
	return b.blocked
}

// Tile returns the tile at (x, y).
func (b *Board) Tile(x, y int) (Tile, error) {
	return b.grid.Tile(C(x, y))
}

// Selected returns the selected rover, or nil.
func (b *Board) Selected() *Rover {
	if b.selected == 0 {
		return nil
	}
	_, r, ok := b.grid.FindRover(b.selected)
	if !ok {
		return nil
	}
	return r
}

// SelectedAt returns the selected rover and its position.
func (b *Board) SelectedAt() (Coord, *Rover, bool) {
	if b.selected == 0 {
		return Coord{}, nil, false
	}
	return b.grid.FindRover(b.selected)
}

// Select makes the rover with the given ID the selected rover.
func (b *Board) Select(id RoverID) error {
	if _, _, ok := b.grid.FindRover(id); !ok {
		return fmt.Errorf("sim: select rover %d: %w", id, ErrNoRover)
	}
	b.selected = id
	return nil
}

// Clear opens every tile and restarts the tick counter and totals.
func (b *Board) Clear() {
	b.grid.Clear()
	b.selected = 0
	b.tick = 0
	b.resources = 0
	b.blocked = 0
}

// PlaceRover puts r on the open tile (x, y) and assigns it a new ID.
// The first rover placed on an empty selection becomes selected.
func (b *Board) PlaceRover(r *Rover, x, y int) error {
	c := C(x, y)
	if !b.grid.InBounds(c) {
		return &CoordError{Op: "place rover", At: c, Err: ErrOutOfBounds}
	}
	if t := b.grid.At(c); !t.IsOpen() {
		return &CoordError{Op: "place rover", At: c, Err: fmt.Errorf("%w: tile is %s", ErrInvalidPlacement, t.Kind())}
	}
	b.nextID++
	r.id = b.nextID
	b.grid.cell(c).SetRover(r)
	if b.selected == 0 {
		b.selected = r.id
	}
	return nil
}

// PlaceWall makes the open tile (x, y) impassable.
func (b *Board) PlaceWall(x, y int) error {
	c := C(x, y)
	if !b.grid.InBounds(c) {
		return &CoordError{Op: "place wall", At: c, Err: ErrOutOfBounds}
	}
	if t := b.grid.At(c); !t.IsOpen() {
		return &CoordError{Op: "place wall", At: c, Err: fmt.Errorf("%w: tile is %s", ErrInvalidPlacement, t.Kind())}
	}
	b.grid.cell(c).SetWall()
	return nil
}

// Footprint returns the cells a building placed at (x, y) covers:
// the building itself, then the three wall cells.
func Footprint(x, y int) [4]Coord {
	return [4]Coord{C(x, y), C(x+1, y), C(x, y-1), C(x+1, y-1)}
}

// PlaceBuilding puts bd at (x, y) and walls off (x+1, y), (x, y-1) and
// (x+1, y-1). All four cells must be on the board and open; otherwise
// nothing is written.
func (b *Board) PlaceBuilding(bd *Building, x, y int) error {
	cells := Footprint(x, y)
	for _, c := range cells {
		if !b.grid.InBounds(c) {
			return &CoordError{Op: "place building", At: c, Err: fmt.Errorf("%w: %w", ErrInvalidPlacement, ErrOutOfBounds)}
		}
		if t := b.grid.At(c); !t.IsOpen() {
			return &CoordError{Op: "place building", At: c, Err: fmt.Errorf("%w: tile is %s", ErrInvalidPlacement, t.Kind())}
		}
	}

	b.grid.cell(cells[0]).SetBuilding(bd)
	for _, c := range cells[1:] {
		b.grid.cell(c).SetWall()
	}
	return nil
}

// PlaceStarterState lays out the starting board: one rover at the spawn
// cell and one mine at the starter mine position.
func (b *Board) PlaceStarterState(now time.Time) error {
	b.Clear()
	if err := b.PlaceRover(NewRover(), b.settings.Spawn.X, b.settings.Spawn.Y); err != nil {
		return err
	}
	mine := NewMine(now, b.settings.MineCooldown)
	return b.PlaceBuilding(mine, b.settings.StarterMine.X, b.settings.StarterMine.Y)
}

// ResetRound wipes the board and spawns a fresh rover carrying the
// selected rover's program. Buildings and walls are discarded.
// Without a selected rover it fails with ErrNoRover and changes nothing.
func (b *Board) ResetRound() error {
	r := b.Selected()
	if r == nil {
		return fmt.Errorf("sim: reset round: %w", ErrNoRover)
	}
	actions := r.Actions()

	spawn := b.settings.Spawn
	if !b.grid.InBounds(spawn) {
		return &CoordError{Op: "reset", At: spawn, Err: ErrOutOfBounds}
	}

	b.Clear()
	rover := NewRoverWithActions(actions)
	if err := b.PlaceRover(rover, spawn.X, spawn.Y); err != nil {
		return err
	}
	b.selected = rover.id
	return nil
}

// Program replaces the selected rover's actions and rewinds its cursor.
func (b *Board) Program(actions []ActionType) error {
	r := b.Selected()
	if r == nil {
		return ErrNoRover
	}
	r.ClearActions()
	for _, a := range actions {
		r.AddAction(a)
	}
	r.Reset()
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	clone.grid = b.grid.Clone()
	return &clone
}
