package core

// Color represents a foreground color for a screen cell.
// Renderers map it to a terminal color; plain output ignores it.
type Color uint8

// Colors used by the board view.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorOrange
	ColorGray
	ColorBrightWhite
)
