package sim

// RoverID identifies a rover on a board.
type RoverID int

// Rover is a programmable board piece. It repeats its action list forever,
// one action per tick.
type Rover struct {
	id        RoverID
	direction Direction
	actions   []ActionType
	cursor    int
	cargo     int
}

// NewRover creates a rover facing North with an empty program.
func NewRover() *Rover {
	return &Rover{direction: North}
}

// NewRoverWithActions creates a rover facing North running the given actions.
func NewRoverWithActions(actions []ActionType) *Rover {
	r := NewRover()
	for _, a := range actions {
		r.AddAction(a)
	}
	return r
}

func (*Rover) isOccupant() {}

// ID returns the board-assigned identifier (0 until placed).
func (r *Rover) ID() RoverID {
	return r.id
}

// Direction returns the current facing.
func (r *Rover) Direction() Direction {
	return r.direction
}

// SetDirection changes the facing. Used when building boards from files.
func (r *Rover) SetDirection(d Direction) {
	r.direction = d
}

// Cursor returns the index of the current action.
func (r *Rover) Cursor() int {
	return r.cursor
}

// Cargo returns the number of resources this rover has collected.
func (r *Rover) Cargo() int {
	return r.cargo
}

// Len returns the number of programmed actions.
func (r *Rover) Len() int {
	return len(r.actions)
}

// Actions returns a copy of the programmed actions.
func (r *Rover) Actions() []ActionType {
	out := make([]ActionType, len(r.actions))
	copy(out, r.actions)
	return out
}

// TurnRight rotates the rover 90° clockwise.
func (r *Rover) TurnRight() {
	r.direction = r.direction.Right()
}

// TurnLeft rotates the rover 90° counter-clockwise.
func (r *Rover) TurnLeft() {
	r.direction = r.direction.Left()
}

// Advance moves the cursor to the next action, wrapping at the end.
func (r *Rover) Advance() {
	if len(r.actions) == 0 {
		return
	}
	r.cursor = (r.cursor + 1) % len(r.actions)
}

// Reset rewinds the cursor to the first action.
func (r *Rover) Reset() {
	r.cursor = 0
}

// ClearActions empties the program.
func (r *Rover) ClearActions() {
	r.actions = r.actions[:0]
	r.cursor = 0
}

// AddAction appends an action to the end of the program.
func (r *Rover) AddAction(a ActionType) {
	r.actions = append(r.actions, a)
}

// CurrentAction returns the action that will run on the next tick.
// An empty program always yields ActionNone.
func (r *Rover) CurrentAction() ActionType {
	if len(r.actions) == 0 {
		return ActionNone
	}
	return r.actions[r.cursor]
}

// NextAction returns the action after the current one.
func (r *Rover) NextAction() ActionType {
	if len(r.actions) == 0 {
		return ActionNone
	}
	return r.actions[(r.cursor+1)%len(r.actions)]
}

// Clone returns a deep copy of the rover, keeping its ID.
func (r *Rover) Clone() *Rover {
	clone := *r
	clone.actions = r.Actions()
	return &clone
}
