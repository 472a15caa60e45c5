// Package control implements the per-frame state machine of a single logical
// input. A Control is one of three variants:
//
//	Digital: positive and negative bindings treated as buttons. The real
//	value is integrated over time using the sensitivity and gravity
//	parameters.
//
//	Analog: the real value is taken directly from the bound stick axis or
//	trigger. The edge flags are derived from how the value changes from
//	frame to frame.
//
//	Action: any number of bindings combined with OR. The value is 1 when any
//	binding is active and 0 otherwise.
//
// Controls with gamepad bindings keep a separate state for every controller
// index. The gamepad bindings are retargeted to each controller in turn
// during Update(). The controller of the first gamepad binding is the primary
// controller and is the one read by the accessors that do not take a
// controller index. Keyboard and mouse bindings only contribute to the state
// of the primary controller.
package control

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/inputmaster/binding"
)

// Sentinel errors returned by New()
var (
	ErrIdentifier        = errors.New("control identifier is empty")
	ErrNoPositive        = errors.New("control has no positive binding")
	ErrNoBindings        = errors.New("action control has no bindings")
	ErrNegativeParameter = errors.New("control parameter is negative")
	ErrVariant           = errors.New("unknown control variant")
)

// Variant of a control
type Variant int

// List of valid Variant values
const (
	Digital Variant = iota
	Analog
	Action
)

func (v Variant) String() string {
	switch v {
	case Digital:
		return "digital"
	case Analog:
		return "analog"
	case Action:
		return "action"
	}
	return "unknown"
}

// Config is the static configuration of a control
type Config struct {
	Identifier string
	Variant    Variant

	// the positive binding is required for the digital and analog variants
	Positive binding.Binding
	Negative binding.Binding

	// Modifier is an optional gate. When it is set the control behaves as if
	// no input is active unless the modifier is held
	Modifier binding.Binding

	// bindings for the action variant
	Bindings []binding.Binding

	// rate of change of the real value per second while a digital binding is
	// held and the rate of return to zero when nothing is held
	Sensitivity float64
	Gravity     float64

	// a real value with a magnitude less than or equal to the dead zone
	// results in a value of zero
	DeadZone float64

	// Invert swaps the positive and negative bindings of a digital control
	// and negates the sample of an analog control
	Invert bool

	// Snap sets the real value of a digital control to zero when the
	// direction reverses
	Snap bool

	Scope     Scope
	DebugOnly bool
}

// DigitalConfig returns a configuration for a digital control with a
// sensitivity and gravity of one
func DigitalConfig(id string, positive binding.Binding, negative binding.Binding) Config {
	return Config{
		Identifier:  id,
		Variant:     Digital,
		Positive:    positive,
		Negative:    negative,
		Sensitivity: 1,
		Gravity:     1,
	}
}

// AnalogConfig returns a configuration for an analog control
func AnalogConfig(id string, positive binding.Binding, deadZone float64) Config {
	return Config{
		Identifier: id,
		Variant:    Analog,
		Positive:   positive,
		DeadZone:   deadZone,
	}
}

// ActionConfig returns a configuration for an action control
func ActionConfig(id string, bindings ...binding.Binding) Config {
	return Config{
		Identifier: id,
		Variant:    Action,
		Bindings:   bindings,
	}
}

// Validate returns all problems with the configuration joined into one error
func (cfg Config) Validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Identifier) == "" {
		errs = append(errs, ErrIdentifier)
	}

	switch cfg.Variant {
	case Digital, Analog:
		if cfg.Positive.IsNone() {
			errs = append(errs, ErrNoPositive)
		} else if err := cfg.Positive.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("positive: %w", err))
		}
		if !cfg.Negative.IsNone() {
			if err := cfg.Negative.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("negative: %w", err))
			}
		}
	case Action:
		if len(cfg.Bindings) == 0 {
			errs = append(errs, ErrNoBindings)
		}
		for i, b := range cfg.Bindings {
			if err := b.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("binding %d: %w", i, err))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %d", ErrVariant, cfg.Variant))
	}

	if !cfg.Modifier.IsNone() {
		if err := cfg.Modifier.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("modifier: %w", err))
		}
	}

	if cfg.Sensitivity < 0 {
		errs = append(errs, fmt.Errorf("%w: sensitivity %v", ErrNegativeParameter, cfg.Sensitivity))
	}
	if cfg.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: gravity %v", ErrNegativeParameter, cfg.Gravity))
	}
	if cfg.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("%w: dead zone %v", ErrNegativeParameter, cfg.DeadZone))
	}

	if len(errs) == 0 {
		return nil
	}

	if cfg.Identifier != "" {
		return fmt.Errorf("control %s: %w", cfg.Identifier, errors.Join(errs...))
	}
	return fmt.Errorf("control: %w", errors.Join(errs...))
}

// Control is a single logical input
type Control struct {
	cfg Config

	blocked bool

	// whether the control has any gamepad bindings and therefore a state for
	// every controller index
	perController bool
	primary       int

	// state for each controller index. a control without gamepad bindings has
	// a single state at index zero
	states map[int]*Snapshot
}

// New creates a new control from the configuration
func New(cfg Config) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		cfg:    cfg,
		states: make(map[int]*Snapshot),
	}

	bindings := append([]binding.Binding{cfg.Positive, cfg.Negative, cfg.Modifier}, cfg.Bindings...)
	for _, b := range bindings {
		if b.IsGamepad() {
			c.perController = true
			c.primary = b.Pad
			break
		}
	}

	if c.perController {
		for i := range binding.MaxControllers {
			c.states[i] = &Snapshot{}
		}
	} else {
		c.states[0] = &Snapshot{}
	}

	return c, nil
}

func (c *Control) String() string {
	return fmt.Sprintf("%s (%s)", c.cfg.Identifier, c.cfg.Variant)
}

// Identifier returns the identifier of the control
func (c *Control) Identifier() string {
	return c.cfg.Identifier
}

// Config returns a copy of the control's configuration
func (c *Control) Config() Config {
	cfg := c.cfg
	cfg.Bindings = append([]binding.Binding(nil), c.cfg.Bindings...)
	return cfg
}

// Scope returns the scope of the control
func (c *Control) Scope() Scope {
	return c.cfg.Scope
}

// DebugOnly returns true if the control should only be updated in debug
// builds
func (c *Control) DebugOnly() bool {
	return c.cfg.DebugOnly
}

// PerController returns true if the control keeps state for every controller
// index
func (c *Control) PerController() bool {
	return c.perController
}

// Primary returns the primary controller index
func (c *Control) Primary() int {
	return c.primary
}

// Blocked returns true if the control is blocked
func (c *Control) Blocked() bool {
	return c.blocked
}

// SetBlocked blocks or unblocks the control. A blocked control keeps its
// values and held state but reports no transitions
func (c *Control) SetBlocked(blocked bool) {
	c.blocked = blocked
}

// Reset zeroes the state for every controller and sets the blocked state
func (c *Control) Reset(block bool) {
	for _, s := range c.states {
		*s = Snapshot{}
	}
	c.blocked = block
}

// Snapshot returns the state for the primary controller
func (c *Control) Snapshot() Snapshot {
	return c.SnapshotFor(c.primary)
}

// SnapshotFor returns the state for the controller index. A control without
// gamepad bindings returns the same state for every index. An index that is
// out of range returns the zero Snapshot
func (c *Control) SnapshotFor(controller int) Snapshot {
	if !c.perController {
		return *c.states[0]
	}
	if s, ok := c.states[controller]; ok {
		return *s
	}
	return Snapshot{}
}

// Value returns the value for the primary controller
func (c *Control) Value() float64 {
	return c.Snapshot().Value
}

// RealValue returns the real value for the primary controller
func (c *Control) RealValue() float64 {
	return c.Snapshot().RealValue
}

// FixedValue returns the fixed value for the primary controller
func (c *Control) FixedValue() int {
	return c.Snapshot().FixedValue
}

// Down returns the down state for the primary controller
func (c *Control) Down() State {
	return c.Snapshot().Down
}

// Held returns the held state for the primary controller
func (c *Control) Held() State {
	return c.Snapshot().Held
}

// Up returns the up state for the primary controller
func (c *Control) Up() State {
	return c.Snapshot().Up
}

// Update the state of the control for every controller. The dt argument is
// the duration of the frame in seconds
func (c *Control) Update(dt float64, dev binding.Device) {
	if c.blocked {
		c.Suspend()
		return
	}

	if !c.perController {
		c.update(dt, dev, 0, c.states[0])
		return
	}

	for i := range binding.MaxControllers {
		c.update(dt, dev, i, c.states[i])
	}
}

func (c *Control) update(dt float64, dev binding.Device, controller int, s *Snapshot) {
	switch c.cfg.Variant {
	case Digital:
		c.updateDigital(dt, dev, controller, s)
	case Analog:
		c.updateAnalog(dev, controller, s)
	case Action:
		c.updateAction(dev, controller, s)
	}
}

// Suspend clears the transition flags of every controller without sampling
// the device. Values and held state are kept. The registry calls it for
// frames in which the control is out of scope
func (c *Control) Suspend() {
	for _, s := range c.states {
		s.block()
	}
}

// block clears the transition flags but otherwise leaves the state alone
func (s *Snapshot) block() {
	s.Down = Neither
	s.Up = Neither
	switch s.Action {
	case ActionDown:
		s.Action = ActionHeld
	case ActionUp:
		s.Action = ActionNone
	}
}

// bindingFor retargets a binding to the controller index. Keyboard and mouse
// bindings are only used by the primary controller
func (c *Control) bindingFor(b binding.Binding, controller int) binding.Binding {
	if b.IsGamepad() {
		return b.ForPad(controller)
	}
	if c.perController && controller != c.primary {
		return binding.None
	}
	return b
}

// gateOpen returns true if the control has no modifier or if the modifier is
// held
func (c *Control) gateOpen(dev binding.Device, controller int) bool {
	if c.cfg.Modifier.IsNone() {
		return true
	}
	m := c.bindingFor(c.cfg.Modifier, controller)
	if m.IsNone() {
		return false
	}
	return binding.Resolve(dev, m).Active()
}

// Controllers returns the controller indexes for which the control keeps
// state
func (c *Control) Controllers() []int {
	if !c.perController {
		return []int{0}
	}
	idx := make([]int, 0, binding.MaxControllers)
	for i := range binding.MaxControllers {
		idx = append(idx, i)
	}
	return idx
}

// Any returns whether any controller of the control is down, held or up in
// either direction
func (c *Control) Any() (down bool, held bool, up bool) {
	for _, s := range c.states {
		down = down || s.Down.Either()
		held = held || s.Held.Either()
		up = up || s.Up.Either()
	}
	return down, held, up
}
