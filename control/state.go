package control

import "math"

// State is a set of polarity flags. A control can be active in both
// directions at the same time so the Down, Held and Up values of a control
// are each a State rather than a single flag
type State uint8

// List of State values
const (
	Neither  State = 0
	Positive State = 1 << 0
	Negative State = 1 << 1
	Both           = Positive | Negative
)

// HasPositive returns true if the positive flag is set
func (s State) HasPositive() bool {
	return s&Positive == Positive
}

// HasNegative returns true if the negative flag is set
func (s State) HasNegative() bool {
	return s&Negative == Negative
}

// Either returns true if any flag is set
func (s State) Either() bool {
	return s != Neither
}

func (s State) String() string {
	switch s {
	case Neither:
		return "neither"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Both:
		return "both"
	}
	return "unknown"
}

// ActionState is the state machine of the action variant
type ActionState int

// List of ActionState values
const (
	ActionNone ActionState = iota
	ActionDown
	ActionHeld
	ActionUp
)

func (s ActionState) String() string {
	switch s {
	case ActionNone:
		return "none"
	case ActionDown:
		return "down"
	case ActionHeld:
		return "held"
	case ActionUp:
		return "up"
	}
	return "unknown"
}

// Snapshot is the derived state of a control for one controller index
type Snapshot struct {
	Down State
	Held State
	Up   State

	// RealValue is the value before the dead zone is applied
	RealValue float64

	// Value is always in the range -1 to 1
	Value float64

	// FixedValue is the sign of Value
	FixedValue int

	// the state of the action state machine. only meaningful for the action
	// variant
	Action ActionState
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func polarity(v float64) State {
	switch sign(v) {
	case 1:
		return Positive
	case -1:
		return Negative
	}
	return Neither
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// shape applies the dead zone to the real value and sets the derived values
func (s *Snapshot) shape(deadZone float64) {
	s.RealValue = clamp(s.RealValue)
	if math.Abs(s.RealValue) <= deadZone {
		s.Value = 0
	} else {
		s.Value = s.RealValue
	}
	s.FixedValue = sign(s.Value)
}
