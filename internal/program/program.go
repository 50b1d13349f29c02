// Package program parses the rover program language: a whitespace or
// semicolon separated list of actions with optional repeat blocks.
//
//	// drive a square
//	repeat 4 { forward; forward; right }
//
// A parsed program is flattened into the action list a rover loops over.
package program

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/vovakirdan/roverlab/internal/sim"
)

const (
	// MaxRepeat is the largest count a repeat block accepts.
	MaxRepeat = 64
	// MaxActions is the longest flattened program accepted.
	MaxActions = 1024
)

var (
	// ErrRepeatCount is returned for a repeat count outside 1..MaxRepeat.
	ErrRepeatCount = errors.New("repeat count out of range")

	// ErrTooLong is returned when a program flattens to more than
	// MaxActions actions.
	ErrTooLong = errors.New("program too long")
)

// File is the parse tree of a program.
type File struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is a single action or a repeat block.
type Statement struct {
	Repeat *Repeat `parser:"  @@"`
	Action *Action `parser:"| @@ (';' | ',')?"`
}

// Repeat runs its body Count times.
type Repeat struct {
	Pos   lexer.Position
	Count int          `parser:"'repeat' @Int"`
	Body  []*Statement `parser:"'{' @@* '}'"`
}

// Action is one rover action keyword.
type Action struct {
	Pos  lexer.Position
	Name string `parser:"@('forward' | 'fwd' | 'f' | 'right' | 'r' | 'left' | 'l' | 'wait' | 'none')"`
}

var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{};,]`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(programLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// Parse parses src and returns the flattened action list.
func Parse(src string) ([]sim.ActionType, error) {
	return ParseNamed("input", src)
}

// ParseNamed is like Parse but reports positions against filename.
func ParseNamed(filename, src string) ([]sim.ActionType, error) {
	file, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	actions, err := file.Actions()
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	return actions, nil
}

// Actions flattens the parse tree. The flattened length is checked before
// anything is expanded, so the work done is bounded by MaxActions.
func (f *File) Actions() ([]sim.ActionType, error) {
	n, err := measure(f.Statements)
	if err != nil {
		return nil, err
	}
	out := make([]sim.ActionType, 0, n)
	return expand(f.Statements, out), nil
}

// measure returns the flattened length of stmts. It fails as soon as the
// running total passes MaxActions, so counts never multiply unchecked.
func measure(stmts []*Statement) (int, error) {
	n := 0
	for _, s := range stmts {
		switch {
		case s.Action != nil:
			n++
			if n > MaxActions {
				return 0, fmt.Errorf("%s: %w: more than %d actions", s.Action.Pos, ErrTooLong, MaxActions)
			}
		case s.Repeat != nil:
			r := s.Repeat
			if r.Count < 1 || r.Count > MaxRepeat {
				return 0, fmt.Errorf("%s: %w: %d not in 1..%d", r.Pos, ErrRepeatCount, r.Count, MaxRepeat)
			}
			body, err := measure(r.Body)
			if err != nil {
				return 0, err
			}
			n += r.Count * body
			if n > MaxActions {
				return 0, fmt.Errorf("%s: %w: more than %d actions", r.Pos, ErrTooLong, MaxActions)
			}
		}
	}
	return n, nil
}

// expand appends the flattened stmts to out. Callers measure first.
func expand(stmts []*Statement, out []sim.ActionType) []sim.ActionType {
	for _, s := range stmts {
		switch {
		case s.Action != nil:
			out = append(out, s.Action.Type())
		case s.Repeat != nil:
			start := len(out)
			out = expand(s.Repeat.Body, out)
			body := out[start:len(out):len(out)]
			for i := 1; i < s.Repeat.Count; i++ {
				out = append(out, body...)
			}
		}
	}
	return out
}

// Type maps the keyword to its action.
func (a *Action) Type() sim.ActionType {
	switch strings.ToLower(a.Name) {
	case "forward", "fwd", "f":
		return sim.ActionForward
	case "right", "r":
		return sim.ActionTurnRight
	case "left", "l":
		return sim.ActionTurnLeft
	default:
		return sim.ActionNone
	}
}
