package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/vovakirdan/roverlab/internal/registry"
	"github.com/vovakirdan/roverlab/internal/sim"
)

// StarterID is the scenario built by sim.PlaceStarterState.
const StarterID = "starter"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns a loader over the scenarios shipped in the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("scenario: builtin scenarios: %v", err))
	}
	return NewFSLoader(sub, "builtin")
}

// Factory adapts a scenario to a registry factory.
func (sc *Scenario) Factory() registry.Factory {
	return func(s sim.Settings, now time.Time) (*sim.Board, error) {
		return sc.Build(s, now)
	}
}

func init() {
	registry.Register(StarterID, "Starter Yard", sim.NewStarterBoard)

	scenarios, err := Builtin().LoadAll()
	if err != nil {
		panic(fmt.Sprintf("scenario: loading builtin scenarios: %v", err))
	}
	for _, sc := range scenarios {
		registry.Register(sc.ID, sc.Name, sc.Factory())
	}
}
