package control_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/control"
	"github.com/jetsetilly/inputmaster/device/virtual"
	"github.com/jetsetilly/inputmaster/test"
)

const dt = 0.1
const tolerance = 1e-9

func newControl(t *testing.T, cfg control.Config) *control.Control {
	t.Helper()
	c, err := control.New(cfg)
	test.DemandSuccess(t, err)
	return c
}

// frame advances the virtual device and updates the control
func frame(c *control.Control, d *virtual.Device) control.Snapshot {
	d.Frame()
	c.Update(dt, d)
	return c.Snapshot()
}

func TestConstruction(t *testing.T) {
	_, err := control.New(control.DigitalConfig("jump", binding.None, binding.None))
	test.ExpectEquality(t, errors.Is(err, control.ErrNoPositive), true)

	_, err = control.New(control.DigitalConfig("", binding.KeyboardKey(binding.KeySpace), binding.None))
	test.ExpectEquality(t, errors.Is(err, control.ErrIdentifier), true)

	_, err = control.New(control.ActionConfig("fire"))
	test.ExpectEquality(t, errors.Is(err, control.ErrNoBindings), true)

	cfg := control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.Button(5, binding.ButtonA))
	cfg.Sensitivity = -1
	_, err = control.New(cfg)
	test.ExpectEquality(t, errors.Is(err, control.ErrNegativeParameter), true)
	test.ExpectEquality(t, errors.Is(err, binding.ErrControllerRange), true)

	c, err := control.New(control.AnalogConfig("look", binding.Axis(2, binding.AxisRightX), 0.1))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.PerController(), true)
	test.ExpectEquality(t, c.Primary(), 2)
	test.ExpectEquality(t, c.Identifier(), "look")
}

func TestDigitalPressHoldRelease(t *testing.T) {
	d := virtual.NewDevice()
	c := newControl(t, control.DigitalConfig("jump", binding.KeyboardKey(binding.KeySpace), binding.None))

	d.Press(binding.KeySpace)
	s := frame(c, d)
	test.ExpectEquality(t, s.Down, control.Positive)
	test.ExpectEquality(t, s.Held, control.Positive)
	test.ExpectEquality(t, s.Up, control.Neither)
	test.ExpectApproximate(t, s.Value, dt, tolerance)
	test.ExpectEquality(t, s.FixedValue, 1)

	s = frame(c, d)
	test.ExpectEquality(t, s.Down, control.Neither)
	test.ExpectEquality(t, s.Held, control.Positive)
	test.ExpectApproximate(t, s.Value, 2*dt, tolerance)

	d.Release(binding.KeySpace)
	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Positive)
	test.ExpectEquality(t, s.Held, control.Neither)
	test.ExpectApproximate(t, s.Value, dt, tolerance)

	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Neither)
	test.ExpectApproximate(t, s.Value, 0, tolerance)
	test.ExpectEquality(t, s.FixedValue, 0)

	// gravity does not push the value past zero
	s = frame(c, d)
	test.ExpectEquality(t, s.RealValue, 0.0)
}

func TestDigitalClamp(t *testing.T) {
	d := virtual.NewDevice()
	cfg := control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.KeyboardKey(binding.KeyA))
	cfg.Sensitivity = 25
	c := newControl(t, cfg)

	d.Press(binding.KeyA)
	s := frame(c, d)
	test.ExpectEquality(t, s.RealValue, -1.0)
	test.ExpectEquality(t, s.Value, -1.0)
	test.ExpectEquality(t, s.FixedValue, -1)
	test.ExpectEquality(t, s.Down, control.Negative)
}

func TestDigitalDeadZone(t *testing.T) {
	d := virtual.NewDevice()
	cfg := control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.None)
	cfg.DeadZone = 0.25
	c := newControl(t, cfg)

	d.Press(binding.KeyD)
	frame(c, d)
	s := frame(c, d)
	test.ExpectApproximate(t, s.RealValue, 0.2, tolerance)
	test.ExpectEquality(t, s.Value, 0.0)
	test.ExpectEquality(t, s.FixedValue, 0)

	s = frame(c, d)
	test.ExpectApproximate(t, s.RealValue, 0.3, tolerance)
	test.ExpectApproximate(t, s.Value, 0.3, tolerance)
	test.ExpectEquality(t, s.FixedValue, 1)
}

func TestDigitalBothHeld(t *testing.T) {
	d := virtual.NewDevice()
	c := newControl(t, control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.KeyboardKey(binding.KeyA)))

	d.Press(binding.KeyD)
	frame(c, d)
	d.Press(binding.KeyA)
	s := frame(c, d)
	test.ExpectEquality(t, s.Held, control.Both)
	test.ExpectEquality(t, s.Down, control.Negative)
	test.ExpectApproximate(t, s.RealValue, dt, tolerance)

	s = frame(c, d)
	test.ExpectApproximate(t, s.RealValue, dt, tolerance)
}

func TestDigitalSnap(t *testing.T) {
	for _, snap := range []bool{true, false} {
		d := virtual.NewDevice()
		cfg := control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.KeyboardKey(binding.KeyA))
		cfg.Snap = snap
		c := newControl(t, cfg)

		d.Press(binding.KeyA)
		frame(c, d)
		frame(c, d)
		s := frame(c, d)
		test.ExpectApproximate(t, s.RealValue, -0.3, tolerance)

		d.Release(binding.KeyA)
		d.Press(binding.KeyD)
		s = frame(c, d)
		test.ExpectEquality(t, s.Down, control.Positive)
		test.ExpectEquality(t, s.Up, control.Negative)
		if snap {
			test.ExpectEquality(t, s.RealValue, 0.0, "snap")
		} else {
			test.ExpectApproximate(t, s.RealValue, -0.2, tolerance, "no snap")
		}
	}
}

func TestDigitalInvert(t *testing.T) {
	d := virtual.NewDevice()
	cfg := control.DigitalConfig("look", binding.KeyboardKey(binding.KeyUp), binding.KeyboardKey(binding.KeyDown))
	cfg.Invert = true
	c := newControl(t, cfg)

	d.Press(binding.KeyUp)
	s := frame(c, d)
	test.ExpectEquality(t, s.Down, control.Negative)
	test.ExpectApproximate(t, s.Value, -dt, tolerance)
	test.ExpectEquality(t, s.FixedValue, -1)
}

func TestDigitalModifierGate(t *testing.T) {
	d := virtual.NewDevice()
	cfg := control.DigitalConfig("run", binding.KeyboardKey(binding.KeyW), binding.None)
	cfg.Modifier = binding.KeyboardKey(binding.KeyLeftShift)
	c := newControl(t, cfg)

	d.Press(binding.KeyW)
	s := frame(c, d)
	test.ExpectEquality(t, s.Down, control.Neither)
	test.ExpectEquality(t, s.Held, control.Neither)

	d.Press(binding.KeyLeftShift)
	s = frame(c, d)
	test.ExpectEquality(t, s.Down, control.Positive)
	test.ExpectEquality(t, s.Held, control.Positive)

	// closing the gate reports up once
	d.Release(binding.KeyLeftShift)
	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Positive)
	test.ExpectEquality(t, s.Held, control.Neither)

	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Neither)
}

func TestBlocked(t *testing.T) {
	d := virtual.NewDevice()
	c := newControl(t, control.DigitalConfig("jump", binding.KeyboardKey(binding.KeySpace), binding.None))

	d.Press(binding.KeySpace)
	frame(c, d)
	s := frame(c, d)
	value := s.Value

	c.SetBlocked(true)
	test.ExpectEquality(t, c.Blocked(), true)

	d.Release(binding.KeySpace)
	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Neither)
	test.ExpectEquality(t, s.Down, control.Neither)
	test.ExpectEquality(t, s.Held, control.Positive)
	test.ExpectEquality(t, s.Value, value)

	c.Reset(true)
	s = c.Snapshot()
	test.ExpectEquality(t, s, control.Snapshot{})
	test.ExpectEquality(t, c.Blocked(), true)

	c.Reset(false)
	d.Press(binding.KeySpace)
	s = frame(c, d)
	test.ExpectEquality(t, s.Down, control.Positive)
}

func TestAnalog(t *testing.T) {
	d := virtual.NewDevice()
	d.Connect(0)
	c := newControl(t, control.AnalogConfig("move", binding.Axis(0, binding.AxisLeftX), 0.1))

	s := frame(c, d)
	test.ExpectEquality(t, s, control.Snapshot{})

	// inside the dead zone
	d.SetAxis(0, binding.AxisLeftX, 0.05)
	s = frame(c, d)
	test.ExpectEquality(t, s.RealValue, 0.05)
	test.ExpectEquality(t, s.Value, 0.0)
	test.ExpectEquality(t, s.Down, control.Neither)

	d.SetAxis(0, binding.AxisLeftX, 0.5)
	s = frame(c, d)
	test.ExpectEquality(t, s.Down, control.Positive)
	test.ExpectEquality(t, s.Held, control.Positive)
	test.ExpectEquality(t, s.Value, 0.5)

	d.SetAxis(0, binding.AxisLeftX, 0.6)
	s = frame(c, d)
	test.ExpectEquality(t, s.Down, control.Neither)
	test.ExpectEquality(t, s.Held, control.Positive)

	// change of sign
	d.SetAxis(0, binding.AxisLeftX, -0.4)
	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Positive)
	test.ExpectEquality(t, s.Down, control.Negative)
	test.ExpectEquality(t, s.Held, control.Negative)
	test.ExpectEquality(t, s.FixedValue, -1)

	d.SetAxis(0, binding.AxisLeftX, 0)
	s = frame(c, d)
	test.ExpectEquality(t, s.Up, control.Negative)
	test.ExpectEquality(t, s.Held, control.Neither)

	// disconnection is neutral
	d.SetAxis(0, binding.AxisLeftX, 1)
	frame(c, d)
	d.Disconnect(0)
	s = frame(c, d)
	test.ExpectEquality(t, s.Value, 0.0)
	test.ExpectEquality(t, s.Up, control.Positive)
}

func TestAnalogNotANumber(t *testing.T) {
	c := newControl(t, control.AnalogConfig("look", binding.Axis(0, binding.AxisLeftX), 0))
	d := virtual.NewDevice()
	d.Connect(0)

	d.SetAxis(0, binding.AxisLeftX, 0.5)
	s := frame(c, d)
	test.ExpectApproximate(t, s.Value, 0.5, tolerance)

	// a value that is not a number is the same as a centred stick
	d.SetAxis(0, binding.AxisLeftX, math.NaN())
	s = frame(c, d)
	test.ExpectEquality(t, s.Value, 0.0)
	test.ExpectEquality(t, s.RealValue, 0.0)
	test.ExpectEquality(t, s.Held, control.Neither)
	test.ExpectEquality(t, s.Up, control.Positive)
}

func TestAnalogTriggerPair(t *testing.T) {
	d := virtual.NewDevice()
	d.Connect(0)
	cfg := control.AnalogConfig("throttle", binding.Trigger(0, binding.TriggerRight), 0)
	cfg.Negative = binding.Trigger(0, binding.TriggerLeft)
	cfg.Invert = true
	c := newControl(t, cfg)

	d.SetTrigger(0, binding.TriggerRight, 0.75)
	d.SetTrigger(0, binding.TriggerLeft, 0.25)
	s := frame(c, d)
	test.ExpectEquality(t, s.Value, -0.5)
	test.ExpectEquality(t, s.Down, control.Negative)
}

func TestAction(t *testing.T) {
	d := virtual.NewDevice()
	c := newControl(t, control.ActionConfig("save",
		binding.KeyboardKey(binding.KeyS).WithModifiers(binding.ModControl),
		binding.KeyboardKey(binding.KeyF5),
	))

	// modifier not held
	d.Press(binding.KeyS)
	s := frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionNone)

	d.Press(binding.KeyLeftControl)
	s = frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionDown)
	test.ExpectEquality(t, s.Down, control.Positive)
	test.ExpectEquality(t, s.Held, control.Positive)
	test.ExpectEquality(t, s.Value, 1.0)
	test.ExpectEquality(t, s.FixedValue, 1)

	// a second binding does not cause a new transition
	d.Press(binding.KeyF5)
	s = frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionHeld)
	test.ExpectEquality(t, s.Down, control.Neither)

	d.ReleaseAll()
	s = frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionUp)
	test.ExpectEquality(t, s.Up, control.Positive)
	test.ExpectEquality(t, s.Value, 0.0)

	// pressed again immediately after up
	d.Press(binding.KeyF5)
	s = frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionDown)

	d.ReleaseAll()
	frame(c, d)
	s = frame(c, d)
	test.ExpectEquality(t, s.Action, control.ActionNone)
	test.ExpectEquality(t, s.Up, control.Neither)
}

func TestPerController(t *testing.T) {
	d := virtual.NewDevice()
	d.Connect(0)
	d.Connect(1)
	c := newControl(t, control.DigitalConfig("jump", binding.Button(0, binding.ButtonA), binding.KeyboardKey(binding.KeyJ)))

	d.PressButton(1, binding.ButtonA)
	frame(c, d)
	test.ExpectEquality(t, c.SnapshotFor(1).Down, control.Positive)
	test.ExpectEquality(t, c.SnapshotFor(0).Held, control.Neither)
	test.ExpectEquality(t, c.Held(), control.Neither)

	// keyboard bindings only affect the primary controller
	d.Press(binding.KeyJ)
	frame(c, d)
	test.ExpectEquality(t, c.SnapshotFor(0).Down, control.Negative)
	test.ExpectEquality(t, c.SnapshotFor(1).Held, control.Positive)

	test.ExpectEquality(t, c.SnapshotFor(binding.MaxControllers), control.Snapshot{})
	test.ExpectEquality(t, c.SnapshotFor(-1), control.Snapshot{})

	// keyboard only controls answer for any controller index
	k := newControl(t, control.DigitalConfig("jump", binding.KeyboardKey(binding.KeySpace), binding.None))
	d.Press(binding.KeySpace)
	frame(k, d)
	test.ExpectEquality(t, k.SnapshotFor(3).Down, control.Positive)
	test.ExpectEquality(t, k.PerController(), false)
}

func TestValueInvariants(t *testing.T) {
	d := virtual.NewDevice()
	d.Connect(0)

	cfg := control.DigitalConfig("move", binding.KeyboardKey(binding.KeyD), binding.KeyboardKey(binding.KeyA))
	cfg.Sensitivity = 3
	cfg.Gravity = 2
	cfg.DeadZone = 0.2
	cfg.Snap = true
	c := newControl(t, cfg)

	for i := range 200 {
		switch i % 7 {
		case 0:
			d.Press(binding.KeyD)
		case 2:
			d.Press(binding.KeyA)
		case 3:
			d.Release(binding.KeyD)
		case 5:
			d.Release(binding.KeyA)
		}
		s := frame(c, d)

		if s.Value < -1 || s.Value > 1 {
			t.Fatalf("value out of range: %v", s.Value)
		}
		switch {
		case s.Value > 0:
			test.ExpectEquality(t, s.FixedValue, 1)
		case s.Value < 0:
			test.ExpectEquality(t, s.FixedValue, -1)
		default:
			test.ExpectEquality(t, s.FixedValue, 0)
		}
		if s.Down&s.Up != control.Neither {
			t.Fatalf("down and up set for the same polarity: %v %v", s.Down, s.Up)
		}
	}
}
