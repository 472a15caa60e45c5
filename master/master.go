// Package master is the registry of controls and combined outputs. It owns
// every control, updates them once per frame in the order in which they were
// added and keeps the aggregate "any control" flags.
//
// A Master moves through three phases. It is uninitialised until the first
// control is added and initialised until the first call to Update(). Once it
// is running, controls and outputs can no longer be added.
//
// Configuration errors are sticky. If adding a control fails for any reason
// (an invalid binding, a duplicate identifier, etc.) then every subsequent
// call to Update() returns the error and no control is updated.
package master

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/control"
	"github.com/jetsetilly/inputmaster/logger"
)

// Sentinel errors
var (
	ErrDuplicate     = errors.New("duplicate identifier")
	ErrConfiguration = errors.New("configuration error")
	ErrRunning       = errors.New("registry is running")
)

// Phase of the registry
type Phase int

// List of valid Phase values
const (
	PhaseUninitialised Phase = iota
	PhaseInitialised
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialised:
		return "uninitialised"
	case PhaseInitialised:
		return "initialised"
	case PhaseRunning:
		return "running"
	}
	return "unknown"
}

// Configuration is a complete description of the controls and outputs of a
// registry
type Configuration struct {
	Controls []control.Config
	Outputs  []OutputConfig
}

// OutputConfig describes a combined output
type OutputConfig struct {
	Identifier string
	Members    []string
}

// Master is the registry of controls
type Master struct {
	dev   binding.Device
	ctx   Context
	phase Phase

	// controls in insertion order
	controls []*control.Control
	byID     map[string]*control.Control

	// combined outputs in insertion order
	outputs     []*Combined
	outputsByID map[string]*Combined

	// sticky configuration error
	err error

	anyDown bool
	anyHeld bool
	anyUp   bool

	mouse mouse
}

// New is the preferred method of initialisation for the Master type
func New(dev binding.Device, ctx Context) *Master {
	return &Master{
		dev:         dev,
		ctx:         ctx,
		byID:        make(map[string]*control.Control),
		outputsByID: make(map[string]*Combined),
	}
}

// Context returns the current execution context
func (m *Master) Context() Context {
	return m.ctx
}

// SetContext changes the execution context. Controls that are excluded by the
// new context keep their values and held state from the last time they were
// updated but report no down or up transitions
func (m *Master) SetContext(ctx Context) {
	m.ctx = ctx
	logger.Logf(logger.Allow, "master", "context: %s", ctx)
}

// SetDevice changes the device used to update the controls
func (m *Master) SetDevice(dev binding.Device) {
	m.dev = dev
}

// Phase returns the current phase of the registry
func (m *Master) Phase() Phase {
	return m.phase
}

// Err returns the sticky configuration error, if any
func (m *Master) Err() error {
	return m.err
}

func (m *Master) configurationError(err error) error {
	logger.Log(logger.Allow, "master", err.Error())
	m.err = errors.Join(m.err, err)
	return err
}

// Add creates controls from the configurations and adds them to the registry
// in order. All errors are returned together
func (m *Master) Add(cfgs ...control.Config) error {
	if m.phase == PhaseRunning {
		return ErrRunning
	}

	var errs []error
	for _, cfg := range cfgs {
		c, err := control.New(cfg)
		if err != nil {
			errs = append(errs, m.configurationError(err))
			continue
		}
		if err := m.AddControl(c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// AddControl adds an existing control to the registry
func (m *Master) AddControl(c *control.Control) error {
	if m.phase == PhaseRunning {
		return ErrRunning
	}

	id := c.Identifier()
	if _, ok := m.byID[id]; ok {
		return m.configurationError(fmt.Errorf("%w: control %s", ErrDuplicate, id))
	}

	m.controls = append(m.controls, c)
	m.byID[id] = c
	m.phase = PhaseInitialised

	logger.Logf(m.ctx, "master", "added control %s", c)

	return nil
}

// AddOutput creates a combined output over the named controls. The controls
// do not need to exist when the output is added
func (m *Master) AddOutput(cfg OutputConfig) (*Combined, error) {
	if m.phase == PhaseRunning {
		return nil, ErrRunning
	}

	if cfg.Identifier == "" {
		return nil, m.configurationError(fmt.Errorf("%w: output identifier is empty", ErrConfiguration))
	}
	if _, ok := m.outputsByID[cfg.Identifier]; ok {
		return nil, m.configurationError(fmt.Errorf("%w: output %s", ErrDuplicate, cfg.Identifier))
	}

	o := newCombined(m, cfg.Identifier, cfg.Members)
	m.outputs = append(m.outputs, o)
	m.outputsByID[cfg.Identifier] = o

	logger.Logf(m.ctx, "master", "added output %s", cfg.Identifier)

	return o, nil
}

// Load adds every control and output in the configuration
func (m *Master) Load(cfg Configuration) error {
	errs := []error{m.Add(cfg.Controls...)}
	for _, o := range cfg.Outputs {
		_, err := m.AddOutput(o)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Update every control in the order in which they were added. The dt
// argument is the duration of the frame in seconds
func (m *Master) Update(dt float64) error {
	if m.err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, m.err)
	}

	m.phase = PhaseRunning

	m.anyDown = false
	m.anyHeld = false
	m.anyUp = false

	for _, c := range m.controls {
		if !m.permitted(c) {
			c.Suspend()
			continue
		}

		c.Update(dt, m.dev)

		down, held, up := c.Any()
		m.anyDown = m.anyDown || down
		m.anyHeld = m.anyHeld || held
		m.anyUp = m.anyUp || up
	}

	m.updateMouse(dt)

	return nil
}

// permitted returns true if the control should be updated in the current
// context
func (m *Master) permitted(c *control.Control) bool {
	if c.DebugOnly() && !m.ctx.Debug {
		return false
	}
	return c.Scope().Permits(m.ctx.Editor)
}

// Control returns the control with the identifier
func (m *Master) Control(id string) (*control.Control, bool) {
	c, ok := m.byID[id]
	return c, ok
}

// Output returns the combined output with the identifier
func (m *Master) Output(id string) (*Combined, bool) {
	o, ok := m.outputsByID[id]
	return o, ok
}

// Controls returns every control in update order
func (m *Master) Controls() []*control.Control {
	return append([]*control.Control(nil), m.controls...)
}

// Outputs returns every combined output in the order they were added
func (m *Master) Outputs() []*Combined {
	return append([]*Combined(nil), m.outputs...)
}

// AnyControlDown returns true if any control was pressed in the most recent
// frame
func (m *Master) AnyControlDown() bool {
	return m.anyDown
}

// AnyControlHeld returns true if any control was held in the most recent
// frame
func (m *Master) AnyControlHeld() bool {
	return m.anyHeld
}

// AnyControlUp returns true if any control was released in the most recent
// frame
func (m *Master) AnyControlUp() bool {
	return m.anyUp
}

// ResetAll zeroes the state of every control. Every control is unblocked
func (m *Master) ResetAll() {
	for _, c := range m.controls {
		c.Reset(false)
	}
	m.anyDown = false
	m.anyHeld = false
	m.anyUp = false
	m.mouse.reset()
	logger.Log(m.ctx, "master", "reset all controls")
}

// SetBlockedAll blocks or unblocks every control
func (m *Master) SetBlockedAll(blocked bool) {
	for _, c := range m.controls {
		c.SetBlocked(blocked)
	}
	if blocked {
		logger.Log(m.ctx, "master", "all controls blocked")
	} else {
		logger.Log(m.ctx, "master", "all controls unblocked")
	}
}
