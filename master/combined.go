package master

import (
	"math"

	"github.com/jetsetilly/inputmaster/control"
	"github.com/jetsetilly/inputmaster/logger"
)

// Combined is a logical output made from several controls. The member
// controls are looked up by identifier every time a value is requested so the
// values always reflect the most recent call to Master.Update()
type Combined struct {
	m       *Master
	id      string
	members []string

	// controller index to read from the member controls. a negative value
	// means the primary controller of each member
	controller int

	post        []func() float64
	postClamped []func() float64

	// identifiers of missing members that have already been logged. shared
	// between copies made by ForController()
	missing map[string]bool
}

func newCombined(m *Master, id string, members []string) *Combined {
	return &Combined{
		m:          m,
		id:         id,
		members:    append([]string(nil), members...),
		controller: -1,
		missing:    make(map[string]bool),
	}
}

// Identifier returns the identifier of the output
func (o *Combined) Identifier() string {
	return o.id
}

// Members returns the identifiers of the member controls
func (o *Combined) Members() []string {
	return append([]string(nil), o.members...)
}

// Controller returns the controller index override. A negative value means
// there is no override
func (o *Combined) Controller() int {
	return o.controller
}

// ForController returns a copy of the output that reads the member controls
// for the controller index
func (o *Combined) ForController(controller int) *Combined {
	c := *o
	c.controller = controller
	c.post = append([]func() float64(nil), o.post...)
	c.postClamped = append([]func() float64(nil), o.postClamped...)
	return &c
}

// AddPost adds a function whose result is added to the value after it has
// been clamped. The result of the value functions can therefore be outside
// the range -1 to 1
func (o *Combined) AddPost(f func() float64) {
	o.post = append(o.post, f)
}

// AddPostClamped adds a function whose result is added to the value before
// it is clamped
func (o *Combined) AddPostClamped(f func() float64) {
	o.postClamped = append(o.postClamped, f)
}

// resolve the member controls. missing members are logged the first time
// they are found to be missing
func (o *Combined) resolve() []control.Snapshot {
	s := make([]control.Snapshot, 0, len(o.members))
	for _, id := range o.members {
		c, ok := o.m.Control(id)
		if !ok {
			if !o.missing[id] {
				o.missing[id] = true
				logger.Logf(logger.Allow, "master", "output %s: no control named %s", o.id, id)
			}
			continue
		}
		if o.controller < 0 {
			s = append(s, c.Snapshot())
		} else {
			s = append(s, c.SnapshotFor(o.controller))
		}
	}
	return s
}

func (o *Combined) finish(sum float64) float64 {
	for _, f := range o.postClamped {
		sum += f()
	}
	sum = math.Max(-1, math.Min(1, sum))
	for _, f := range o.post {
		sum += f()
	}
	return sum
}

// Value is the sum of the values of the member controls
func (o *Combined) Value() float64 {
	var sum float64
	for _, s := range o.resolve() {
		sum += s.Value
	}
	return o.finish(sum)
}

// FixedValueF is the sum of the fixed values of the member controls
func (o *Combined) FixedValueF() float64 {
	var sum float64
	for _, s := range o.resolve() {
		sum += float64(s.FixedValue)
	}
	return o.finish(sum)
}

// FixedValue is the sign of FixedValueF()
func (o *Combined) FixedValue() int {
	v := o.FixedValueF()
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (o *Combined) anyState(f func(control.Snapshot) control.State, st control.State) bool {
	for _, s := range o.resolve() {
		if f(s)&st == st {
			return true
		}
	}
	return false
}

func down(s control.Snapshot) control.State { return s.Down }
func held(s control.Snapshot) control.State { return s.Held }
func up(s control.Snapshot) control.State   { return s.Up }

// AnyDownPositive returns true if any member was pressed in the positive
// direction
func (o *Combined) AnyDownPositive() bool {
	return o.anyState(down, control.Positive)
}

// AnyDownNegative returns true if any member was pressed in the negative
// direction
func (o *Combined) AnyDownNegative() bool {
	return o.anyState(down, control.Negative)
}

// AnyHeldPositive returns true if any member is held in the positive
// direction
func (o *Combined) AnyHeldPositive() bool {
	return o.anyState(held, control.Positive)
}

// AnyHeldNegative returns true if any member is held in the negative
// direction
func (o *Combined) AnyHeldNegative() bool {
	return o.anyState(held, control.Negative)
}

// AnyUpPositive returns true if any member was released in the positive
// direction
func (o *Combined) AnyUpPositive() bool {
	return o.anyState(up, control.Positive)
}

// AnyUpNegative returns true if any member was released in the negative
// direction
func (o *Combined) AnyUpNegative() bool {
	return o.anyState(up, control.Negative)
}

// AnyDown returns true if any member was pressed in either direction
func (o *Combined) AnyDown() bool {
	return o.AnyDownPositive() || o.AnyDownNegative()
}
