// Package view draws boards as text.
//
// The board is drawn with north up: the top line is y = H-1 and the
// bottom line is y = 0. Each cell is one glyph followed by a space.
package view

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/roverlab/internal/core"
	"github.com/vovakirdan/roverlab/internal/sim"
)

// Glyph returns the character and color for a tile.
func Glyph(t sim.Tile) (rune, core.Color) {
	switch t.Kind() {
	case sim.TileWall:
		return '#', core.ColorGray
	case sim.TileBuilding:
		return BuildingGlyph(t.Building().Kind())
	case sim.TileRover:
		return RoverGlyph(t.Rover().Direction()), core.ColorCyan
	default:
		return '.', core.ColorDefault
	}
}

// BuildingGlyph returns the character and color for a building kind.
func BuildingGlyph(k sim.BuildingKind) (rune, core.Color) {
	switch k {
	case sim.BuildingMine:
		return 'M', core.ColorYellow
	case sim.BuildingProcessingPlant:
		return 'P', core.ColorOrange
	case sim.BuildingTramStation:
		return 'T', core.ColorBlue
	default:
		return '?', core.ColorRed
	}
}

// RoverGlyph returns an arrow pointing the way the rover faces.
func RoverGlyph(d sim.Direction) rune {
	switch d {
	case sim.North:
		return '^'
	case sim.East:
		return '>'
	case sim.South:
		return 'v'
	case sim.West:
		return '<'
	default:
		return '?'
	}
}

// boardLayout holds the screen offsets of a drawn grid.
type boardLayout struct {
	labelW int // width of the y axis labels
	box    core.Rect
}

func layoutFor(g *sim.Grid) boardLayout {
	labelW := len(strconv.Itoa(max(g.H-1, 0)))
	return boardLayout{
		labelW: labelW,
		box:    core.NewRect(labelW+1, 0, g.W*2+3, g.H+2),
	}
}

// cellX returns the screen column of grid column x.
func (l boardLayout) cellX(x int) int {
	return l.box.X + 2 + x*2
}

// BoardSize returns the screen size DrawGrid needs for g.
func BoardSize(g *sim.Grid) (w, h int) {
	l := layoutFor(g)
	return l.box.Right(), l.box.Bottom() + 1
}

// DrawGrid draws g at the top-left of dst with a border and axis labels.
// The rover with ID selected, if any, is highlighted.
func DrawGrid(dst *core.Screen, g *sim.Grid, selected sim.RoverID) {
	l := layoutFor(g)
	dst.DrawBox(l.box, core.ColorGray)

	for y := 0; y < g.H; y++ {
		row := 1 + (g.H - 1 - y)
		dst.DrawTextColor(0, row, fmt.Sprintf("%*d", l.labelW, y), core.ColorGray)

		for x := 0; x < g.W; x++ {
			t := g.At(sim.C(x, y))
			r, c := Glyph(t)
			if rv := t.Rover(); rv != nil && selected != 0 && rv.ID() == selected {
				c = core.ColorBrightWhite
			}
			dst.SetCell(l.cellX(x), row, r, c)
		}
	}

	for x := 0; x < g.W; x++ {
		dst.SetCell(l.cellX(x), l.box.Bottom(), rune('0'+x%10), core.ColorGray)
	}
}

// Grid renders g on its own screen.
func Grid(g *sim.Grid, selected sim.RoverID) *core.Screen {
	w, h := BoardSize(g)
	s := core.NewScreen(w, h)
	DrawGrid(s, g, selected)
	return s
}

// Legend lists the glyphs used by DrawGrid.
func Legend() string {
	return ". open  # wall  M mine  P processing plant  T tram station  ^ > v < rover"
}
