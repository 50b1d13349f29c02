package sim

// TileKind is what a tile currently holds.
type TileKind uint8

const (
	TileOpen TileKind = iota
	TileWall
	TileBuilding
	TileRover
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case TileOpen:
		return "Open"
	case TileWall:
		return "Wall"
	case TileBuilding:
		return "Building"
	case TileRover:
		return "Rover"
	default:
		return "Unknown"
	}
}

// Occupant is implemented by *Rover and *Building only.
type Occupant interface {
	isOccupant()
}

// Tile is a single board cell. The kind and the occupant are always set
// together, so a tile never holds both a rover and a building.
// The zero value is an open tile.
type Tile struct {
	kind     TileKind
	occupant Occupant
}

// OpenTile returns an empty tile.
func OpenTile() Tile {
	return Tile{kind: TileOpen}
}

// WallTile returns an impassable tile.
func WallTile() Tile {
	return Tile{kind: TileWall}
}

// Kind returns what the tile holds.
func (t Tile) Kind() TileKind {
	return t.kind
}

// IsOpen returns true if nothing occupies the tile.
func (t Tile) IsOpen() bool {
	return t.kind == TileOpen
}

// Occupant returns the rover or building on the tile, or nil.
func (t Tile) Occupant() Occupant {
	return t.occupant
}

// Rover returns the rover on the tile, or nil.
func (t Tile) Rover() *Rover {
	r, _ := t.occupant.(*Rover)
	return r
}

// Building returns the building on the tile, or nil.
func (t Tile) Building() *Building {
	b, _ := t.occupant.(*Building)
	return b
}

// SetOpen clears the tile.
func (t *Tile) SetOpen() {
	t.kind = TileOpen
	t.occupant = nil
}

// SetWall makes the tile impassable, dropping any occupant.
func (t *Tile) SetWall() {
	t.kind = TileWall
	t.occupant = nil
}

// SetRover puts r on the tile, dropping any building. A nil rover opens the tile.
func (t *Tile) SetRover(r *Rover) {
	if r == nil {
		t.SetOpen()
		return
	}
	t.kind = TileRover
	t.occupant = r
}

// SetBuilding puts b on the tile, dropping any rover. A nil building opens the tile.
func (t *Tile) SetBuilding(b *Building) {
	if b == nil {
		t.SetOpen()
		return
	}
	t.kind = TileBuilding
	t.occupant = b
}

// SetOccupant dispatches to SetRover or SetBuilding. A nil occupant opens the tile.
func (t *Tile) SetOccupant(o Occupant) {
	switch v := o.(type) {
	case *Rover:
		t.SetRover(v)
	case *Building:
		t.SetBuilding(v)
	default:
		t.SetOpen()
	}
}

// clone returns a tile with its occupant deep-copied.
func (t Tile) clone() Tile {
	switch v := t.occupant.(type) {
	case *Rover:
		return Tile{kind: t.kind, occupant: v.Clone()}
	case *Building:
		return Tile{kind: t.kind, occupant: v.Clone()}
	default:
		return t
	}
}
