package sim

import (
	"testing"
	"time"
)

var allDirections = []Direction{North, East, West, South}

func TestTurnRightCycle(t *testing.T) {
	expected := map[Direction]Direction{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}

	for _, d := range allDirections {
		r := NewRover()
		r.SetDirection(d)
		r.TurnRight()
		if r.Direction() != expected[d] {
			t.Errorf("TurnRight from %v = %v, expected %v", d, r.Direction(), expected[d])
		}
	}
}

func TestTurnsAreInverse(t *testing.T) {
	for _, d := range allDirections {
		r := NewRover()
		r.SetDirection(d)

		r.TurnRight()
		r.TurnLeft()
		if r.Direction() != d {
			t.Errorf("right then left from %v ended at %v", d, r.Direction())
		}

		r.TurnLeft()
		r.TurnRight()
		if r.Direction() != d {
			t.Errorf("left then right from %v ended at %v", d, r.Direction())
		}
	}
}

func TestFourTurnsReturnHome(t *testing.T) {
	for _, d := range allDirections {
		r := NewRover()
		r.SetDirection(d)
		for i := 0; i < 4; i++ {
			r.TurnRight()
		}
		if r.Direction() != d {
			t.Errorf("four right turns from %v ended at %v", d, r.Direction())
		}
		for i := 0; i < 4; i++ {
			r.TurnLeft()
		}
		if r.Direction() != d {
			t.Errorf("four left turns from %v ended at %v", d, r.Direction())
		}
	}
}

func TestAdvanceIsCyclic(t *testing.T) {
	programs := [][]ActionType{
		{ActionForward},
		{ActionForward, ActionTurnLeft},
		{ActionForward, ActionForward, ActionTurnRight, ActionForward},
		{ActionNone, ActionTurnLeft, ActionTurnLeft, ActionForward, ActionTurnRight},
	}

	for _, prog := range programs {
		r := NewRoverWithActions(prog)
		for start := 0; start < len(prog); start++ {
			r.Reset()
			for i := 0; i < start; i++ {
				r.Advance()
			}
			if r.Cursor() != start {
				t.Fatalf("setup: cursor = %d, expected %d", r.Cursor(), start)
			}
			for i := 0; i < len(prog); i++ {
				r.Advance()
			}
			if r.Cursor() != start {
				t.Errorf("len %d program: after %d advances cursor = %d, expected %d",
					len(prog), len(prog), r.Cursor(), start)
			}
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	r := NewRover()

	if r.CurrentAction() != ActionNone {
		t.Errorf("CurrentAction() on empty program = %v, expected None", r.CurrentAction())
	}
	if r.NextAction() != ActionNone {
		t.Errorf("NextAction() on empty program = %v, expected None", r.NextAction())
	}

	r.Advance()
	if r.Cursor() != 0 {
		t.Errorf("Advance() on empty program moved cursor to %d", r.Cursor())
	}
}

func TestCurrentAndNextAction(t *testing.T) {
	r := NewRoverWithActions([]ActionType{ActionForward, ActionTurnLeft, ActionTurnRight})

	steps := []struct {
		current, next ActionType
	}{
		{ActionForward, ActionTurnLeft},
		{ActionTurnLeft, ActionTurnRight},
		{ActionTurnRight, ActionForward},
		{ActionForward, ActionTurnLeft},
	}

	for i, s := range steps {
		if r.CurrentAction() != s.current {
			t.Errorf("step %d: CurrentAction() = %v, expected %v", i, r.CurrentAction(), s.current)
		}
		if r.NextAction() != s.next {
			t.Errorf("step %d: NextAction() = %v, expected %v", i, r.NextAction(), s.next)
		}
		r.Advance()
	}
}

func TestClearActions(t *testing.T) {
	r := NewRoverWithActions([]ActionType{ActionForward, ActionTurnLeft})
	r.Advance()

	r.ClearActions()
	if r.Len() != 0 {
		t.Errorf("Len() after ClearActions = %d, expected 0", r.Len())
	}
	if r.Cursor() != 0 {
		t.Errorf("Cursor() after ClearActions = %d, expected 0", r.Cursor())
	}

	r.AddAction(ActionTurnRight)
	if r.CurrentAction() != ActionTurnRight {
		t.Errorf("CurrentAction() after re-adding = %v, expected TurnRight", r.CurrentAction())
	}
}

func TestRoverCloneIsIndependent(t *testing.T) {
	r := NewRoverWithActions([]ActionType{ActionForward})
	c := r.Clone()

	c.AddAction(ActionTurnLeft)
	c.TurnRight()
	c.Advance()

	if r.Len() != 1 {
		t.Errorf("original program changed: len %d", r.Len())
	}
	if r.Direction() != North {
		t.Errorf("original direction changed: %v", r.Direction())
	}
	if r.Cursor() != 0 {
		t.Errorf("original cursor changed: %d", r.Cursor())
	}
}

func TestMineCooldown(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mine := NewMine(t0, 3*time.Second)

	if mine.TryPickUp(t0.Add(2 * time.Second)) {
		t.Error("pickup 2s after construction should fail")
	}
	if !mine.LastPickup().Equal(t0) {
		t.Error("failed pickup must not touch the timestamp")
	}

	first := t0.Add(4 * time.Second)
	if !mine.TryPickUp(first) {
		t.Fatal("pickup 4s after construction should succeed")
	}
	if mine.TryPickUp(first.Add(1 * time.Second)) {
		t.Error("second pickup within 3s of the first should fail")
	}
	if mine.TryPickUp(first.Add(3 * time.Second)) {
		t.Error("pickup exactly 3s later should fail (strictly greater required)")
	}
	if !mine.TryPickUp(first.Add(3*time.Second + time.Millisecond)) {
		t.Error("pickup just over 3s later should succeed")
	}
}

func TestMissedPickupsAreNotBanked(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	mine := NewMine(t0, 3*time.Second)

	late := t0.Add(time.Minute)
	if !mine.TryPickUp(late) {
		t.Fatal("first pickup after a long wait should succeed")
	}
	if mine.TryPickUp(late) {
		t.Error("a long wait must not bank extra pickups")
	}
}

func TestNonMinesNeverYield(t *testing.T) {
	far := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, b := range []*Building{NewProcessingPlant(), NewTramStation()} {
		if b.TryPickUp(far) {
			t.Errorf("%v yielded a resource", b.Kind())
		}
	}
}

func TestTileExclusivity(t *testing.T) {
	var tile Tile
	if tile.Kind() != TileOpen {
		t.Fatalf("zero tile kind = %v, expected Open", tile.Kind())
	}

	r := NewRover()
	tile.SetRover(r)
	if tile.Kind() != TileRover || tile.Rover() != r {
		t.Fatal("SetRover should promote the tile to Rover")
	}

	b := NewTramStation()
	tile.SetBuilding(b)
	if tile.Kind() != TileBuilding {
		t.Errorf("kind after SetBuilding = %v, expected Building", tile.Kind())
	}
	if tile.Rover() != nil {
		t.Error("rover still reachable after SetBuilding")
	}
	if tile.Building() != b {
		t.Error("building not stored")
	}

	tile.SetRover(r)
	if tile.Building() != nil {
		t.Error("building still reachable after SetRover")
	}

	tile.SetWall()
	if tile.Kind() != TileWall || tile.Occupant() != nil {
		t.Error("SetWall should drop the occupant")
	}

	tile.SetOccupant(b)
	if tile.Kind() != TileBuilding {
		t.Errorf("SetOccupant(building) kind = %v", tile.Kind())
	}
	tile.SetRover(nil)
	if tile.Kind() != TileOpen || tile.Occupant() != nil {
		t.Error("SetRover(nil) should open the tile")
	}
}
