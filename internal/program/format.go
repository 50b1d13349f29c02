package program

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/roverlab/internal/sim"
)

// minRun is the shortest run of one action that Format folds into a
// repeat block.
const minRun = 3

// Keyword returns the canonical keyword for an action.
func Keyword(a sim.ActionType) string {
	switch a {
	case sim.ActionForward:
		return "forward"
	case sim.ActionTurnRight:
		return "right"
	case sim.ActionTurnLeft:
		return "left"
	default:
		return "wait"
	}
}

// Format renders actions as canonical program text. Runs of three or more
// identical actions become repeat blocks. Parse(Format(a)) yields a again.
func Format(actions []sim.ActionType) string {
	parts := make([]string, 0, len(actions))
	for i := 0; i < len(actions); {
		j := i + 1
		for j < len(actions) && actions[j] == actions[i] && j-i < MaxRepeat {
			j++
		}
		kw := Keyword(actions[i])
		if n := j - i; n >= minRun {
			parts = append(parts, fmt.Sprintf("repeat %d { %s }", n, kw))
		} else {
			for k := 0; k < n; k++ {
				parts = append(parts, kw)
			}
		}
		i = j
	}
	return strings.Join(parts, " ")
}
