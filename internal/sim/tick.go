package sim

import "time"

// BlockReason explains why a forward move did not happen.
type BlockReason uint8

const (
	BlockedByWall BlockReason = iota + 1
	BlockedByBuilding
	BlockedByRover      // target rover is not leaving this tick
	BlockedByContention // another rover wants the same cell
	BlockedBySwap       // two rovers would pass through each other
)

// String returns a human-readable name for the reason.
func (r BlockReason) String() string {
	switch r {
	case BlockedByWall:
		return "wall"
	case BlockedByBuilding:
		return "building"
	case BlockedByRover:
		return "rover"
	case BlockedByContention:
		return "contention"
	case BlockedBySwap:
		return "swap"
	default:
		return "unknown"
	}
}

// MoveEvent records a rover moving one cell.
type MoveEvent struct {
	Rover RoverID
	From  Coord
	To    Coord
}

// BlockEvent records a forward move that was rejected.
type BlockEvent struct {
	Rover  RoverID
	At     Coord
	Target Coord
	Reason BlockReason
}

// TurnEvent records a rover turning in place.
type TurnEvent struct {
	Rover RoverID
	At    Coord
	From  Direction
	To    Direction
}

// PickupEvent records a rover collecting a resource from a building.
type PickupEvent struct {
	Rover    RoverID
	At       Coord
	Building Coord
	Kind     BuildingKind
}

// StepResult contains information about what happened during one tick.
type StepResult struct {
	Tick     uint64
	Moved    []MoveEvent
	Blocked  []BlockEvent
	Turned   []TurnEvent
	PickedUp []PickupEvent
}

// intent is a rover's planned position for this tick.
type intent struct {
	rover   *Rover
	from    Coord
	to      Coord
	target  Coord // cell a forward action aimed at, even if blocked
	blocked BlockReason
}

func (in *intent) moving() bool {
	return in.to != in.from
}

func (in *intent) block(reason BlockReason) {
	in.to = in.from
	in.blocked = reason
}

// Tick advances the board by one step at time now.
//
// Rules:
//  1. The next grid starts as a deep copy of the current one.
//  2. Every rover, in scan order (x ascending, then y ascending), reads its
//     current action and advances its cursor.
//  3. Forward aims at the adjacent cell in the rover's facing; turns rotate
//     in place; None does nothing.
//  4. Moves into walls or buildings are blocked. Moves into a cell that
//     another rover keeps, that several rovers want, or that would swap two
//     rovers are blocked too. Moves into a cell vacated this tick succeed.
//  5. A move off the board aborts the tick with ErrOutOfBounds and leaves
//     the board unchanged.
//  6. After moving, every rover facing a building tries a pickup.
//  7. The new grid replaces the old one.
func (b *Board) Tick(now time.Time) (StepResult, error) {
	next := b.grid.Clone()
	result := StepResult{
		Tick:     b.tick + 1,
		Moved:    make([]MoveEvent, 0),
		Blocked:  make([]BlockEvent, 0),
		Turned:   make([]TurnEvent, 0),
		PickedUp: make([]PickupEvent, 0),
	}

	rovers := next.Rovers()
	intents := make([]intent, len(rovers))
	for i, ra := range rovers {
		r := ra.Rover
		action := r.CurrentAction()
		r.Advance()

		in := intent{rover: r, from: ra.At, to: ra.At, target: ra.At}
		switch action {
		case ActionForward:
			target := ra.At.Step(r.Direction())
			if !next.InBounds(target) {
				return StepResult{}, &MoveError{Rover: r.ID(), From: ra.At, To: target, Err: ErrOutOfBounds}
			}
			in.target = target
			switch next.At(target).Kind() {
			case TileWall:
				in.blocked = BlockedByWall
			case TileBuilding:
				in.blocked = BlockedByBuilding
			default:
				in.to = target
			}
		case ActionTurnRight:
			from := r.Direction()
			r.TurnRight()
			result.Turned = append(result.Turned, TurnEvent{Rover: r.ID(), At: ra.At, From: from, To: r.Direction()})
		case ActionTurnLeft:
			from := r.Direction()
			r.TurnLeft()
			result.Turned = append(result.Turned, TurnEvent{Rover: r.ID(), At: ra.At, From: from, To: r.Direction()})
		}
		intents[i] = in
	}

	resolveMoves(intents)

	// Vacate every origin before filling destinations so chains of rovers
	// following each other all move.
	for i := range intents {
		if intents[i].moving() {
			next.cell(intents[i].from).SetOpen()
		}
	}
	for i := range intents {
		in := &intents[i]
		switch {
		case in.moving():
			next.cell(in.to).SetRover(in.rover)
			result.Moved = append(result.Moved, MoveEvent{Rover: in.rover.ID(), From: in.from, To: in.to})
		case in.blocked != 0:
			result.Blocked = append(result.Blocked, BlockEvent{Rover: in.rover.ID(), At: in.from, Target: in.target, Reason: in.blocked})
		}
	}

	picked := 0
	for _, ra := range next.Rovers() {
		ahead := ra.At.Step(ra.Rover.Direction())
		bd := next.At(ahead).Building()
		if bd == nil {
			continue
		}
		if bd.TryPickUp(now) {
			ra.Rover.cargo++
			picked++
			result.PickedUp = append(result.PickedUp, PickupEvent{Rover: ra.Rover.ID(), At: ra.At, Building: ahead, Kind: bd.Kind()})
		}
	}

	b.grid = next
	b.tick++
	b.resources += picked
	b.blocked += len(result.Blocked)
	return result, nil
}

// resolveMoves blocks conflicting moves until no more conflicts remain.
// Blocking only ever turns movers into stayers, so the result does not
// depend on the order rovers are examined in.
func resolveMoves(intents []intent) {
	origins := make(map[Coord]int, len(intents))
	for i, in := range intents {
		origins[in.from] = i
	}

	for changed := true; changed; {
		changed = false

		claims := make(map[Coord]int, len(intents))
		for _, in := range intents {
			claims[in.to]++
		}

		for i := range intents {
			in := &intents[i]
			if !in.moving() {
				continue
			}

			if j, ok := origins[in.to]; ok {
				other := &intents[j]
				if !other.moving() {
					in.block(BlockedByRover)
					changed = true
					continue
				}
				if other.to == in.from {
					in.block(BlockedBySwap)
					other.block(BlockedBySwap)
					changed = true
					continue
				}
			}

			if claims[in.to] > 1 {
				in.block(BlockedByContention)
				changed = true
			}
		}
	}
}
