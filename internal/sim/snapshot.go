package sim

import (
	"fmt"
	"hash/fnv"
)

// Snapshot returns a hash of the complete board state, for determinism checks.
func (b *Board) Snapshot() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "S:%dx%d;T:%d;R:%d;B:%d;Sel:%d;", b.grid.W, b.grid.H, b.tick, b.resources, b.blocked, b.selected)

	for i, t := range b.grid.Tiles {
		switch t.Kind() {
		case TileOpen:
			continue
		case TileWall:
			fmt.Fprintf(h, "%d:W,", i)
		case TileBuilding:
			bd := t.Building()
			fmt.Fprintf(h, "%d:B:%d:%d,", i, bd.Kind(), bd.LastPickup().UnixNano())
		case TileRover:
			r := t.Rover()
			fmt.Fprintf(h, "%d:R:%d:%d:%d:%d:%v,", i, r.ID(), r.Direction(), r.Cursor(), r.Cargo(), r.actions)
		}
	}

	return h.Sum64()
}
