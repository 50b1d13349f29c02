package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roverlab/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// Styled converts a Screen to a string with terminal colors.
// Adjacent cells with the same color share one escape sequence.
func Styled(s *core.Screen) string {
	lines := make([]string, s.Height())

	for y := range lines {
		var sb strings.Builder
		width := len([]rune(s.Row(y)))

		x := 0
		for x < width {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < width {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Render returns s as styled text when color is true, plain text otherwise.
func Render(s *core.Screen, color bool) string {
	if color {
		return Styled(s)
	}
	return s.String()
}
