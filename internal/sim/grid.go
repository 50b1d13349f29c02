package sim

// Grid is the rectangular array of tiles.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid creates a grid with every tile open.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at c, or an open tile when c is off the grid.
// Callers that must distinguish the two use Tile.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return OpenTile()
	}
	return g.Tiles[g.index(c)]
}

// Tile returns the tile at c or ErrOutOfBounds.
func (g *Grid) Tile(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Tile{}, &CoordError{Op: "read", At: c, Err: ErrOutOfBounds}
	}
	return g.Tiles[g.index(c)], nil
}

// cell returns a pointer to the tile at c. c must be in bounds.
func (g *Grid) cell(c Coord) *Tile {
	return &g.Tiles[g.index(c)]
}

// Clear opens every tile.
func (g *Grid) Clear() {
	for i := range g.Tiles {
		g.Tiles[i].SetOpen()
	}
}

// Clone returns a deep copy of the grid; rovers and buildings are copied too.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	for i, t := range g.Tiles {
		tiles[i] = t.clone()
	}
	return &Grid{
		W:     g.W,
		H:     g.H,
		Tiles: tiles,
	}
}

// RoverAt is a rover together with its position.
type RoverAt struct {
	At    Coord
	Rover *Rover
}

// Rovers returns every rover in scan order: x ascending, then y ascending.
func (g *Grid) Rovers() []RoverAt {
	out := make([]RoverAt, 0)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			c := C(x, y)
			if r := g.At(c).Rover(); r != nil {
				out = append(out, RoverAt{At: c, Rover: r})
			}
		}
	}
	return out
}

// FindRover returns the position of the rover with the given ID.
func (g *Grid) FindRover(id RoverID) (Coord, *Rover, bool) {
	for i, t := range g.Tiles {
		if r := t.Rover(); r != nil && r.ID() == id {
			return C(i%g.W, i/g.W), r, true
		}
	}
	return Coord{}, nil, false
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Kind() == kind {
			n++
		}
	}
	return n
}
