package view

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/roverlab/internal/clock"
	"github.com/vovakirdan/roverlab/internal/core"
	"github.com/vovakirdan/roverlab/internal/program"
)

// Frame renders a published frame: the board followed by a status line
// and a line about the selected rover.
func Frame(f *clock.Frame) *core.Screen {
	status := statusLine(f)
	rover := roverLine(f)

	w, h := BoardSize(f.Grid)
	w = max(w, len([]rune(status)), len([]rune(rover)))
	s := core.NewScreen(w, h+2)
	DrawGrid(s, f.Grid, f.Selected)

	s.DrawTextColor(0, h, status, core.ColorDefault)
	s.DrawTextColor(0, h+1, rover, core.ColorCyan)
	return s
}

func statusLine(f *clock.Frame) string {
	parts := []string{
		fmt.Sprintf("tick %d", f.Tick),
		fmt.Sprintf("resources %d", f.Resources),
	}
	if f.Running {
		parts = append(parts, "running")
	} else {
		parts = append(parts, "paused")
	}
	if res := f.Result; res != nil {
		if n := len(res.Blocked); n > 0 {
			parts = append(parts, fmt.Sprintf("blocked %d", n))
		}
		if n := len(res.PickedUp); n > 0 {
			parts = append(parts, fmt.Sprintf("picked up %d", n))
		}
	}
	return strings.Join(parts, "  ")
}

func roverLine(f *clock.Frame) string {
	at, r, ok := f.SelectedRover()
	if !ok {
		return "no rover selected"
	}
	line := fmt.Sprintf("rover %d at %v facing %v cargo %d", r.ID(), at, r.Direction(), r.Cargo())
	if r.Len() == 0 {
		return line + "  idle"
	}
	return fmt.Sprintf("%s  next %s  program: %s",
		line, program.Keyword(r.CurrentAction()), program.Format(r.Actions()))
}
