package binding_test

import (
	"errors"
	"math"
	"testing"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/device/virtual"
	"github.com/jetsetilly/inputmaster/test"
)

func TestNames(t *testing.T) {
	for _, b := range []binding.Binding{
		binding.KeyboardKey(binding.KeySpace),
		binding.KeyboardKey(binding.KeyS).WithModifiers(binding.ModControl),
		binding.KeyboardKey(binding.KeyF12).WithModifiers(binding.ModControl | binding.ModShift),
		binding.Mouse(binding.MouseMiddle),
		binding.Button(1, binding.ButtonA),
		binding.Axis(0, binding.AxisLeftX),
		binding.Trigger(2, binding.TriggerRight),
		binding.None,
	} {
		p, err := binding.Parse(b.String())
		test.ExpectSuccess(t, err, b)
		test.ExpectEquality(t, p, b)
	}

	test.ExpectEquality(t, binding.KeyboardKey(binding.KeyS).WithModifiers(binding.ModControl).String(), "Ctrl+S")
	test.ExpectEquality(t, binding.Button(1, binding.ButtonA).String(), "Pad1:A")

	b, err := binding.Parse("pad3:lefttrigger")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, binding.Trigger(3, binding.TriggerLeft))

	_, err = binding.Parse("Pad4:A")
	test.ExpectEquality(t, errors.Is(err, binding.ErrControllerRange), true)

	_, err = binding.Parse("Hyper+A")
	test.ExpectEquality(t, errors.Is(err, binding.ErrUnknownName), true)

	_, err = binding.Parse("Pad0:Turbo")
	test.ExpectEquality(t, errors.Is(err, binding.ErrUnknownName), true)
}

func TestValidate(t *testing.T) {
	test.ExpectEquality(t, errors.Is(binding.None.Validate(), binding.ErrUnbound), true)
	test.ExpectSuccess(t, binding.KeyboardKey(binding.KeyA).Validate())
	test.ExpectEquality(t, errors.Is(binding.KeyboardKey(binding.KeyUnknown).Validate(), binding.ErrInvalidCode), true)
	test.ExpectEquality(t, errors.Is(binding.Button(4, binding.ButtonA).Validate(), binding.ErrControllerRange), true)
	test.ExpectEquality(t, errors.Is(binding.Axis(-1, binding.AxisLeftX).Validate(), binding.ErrControllerRange), true)
	test.ExpectEquality(t, errors.Is(binding.Axis(0, binding.GamepadAxis(10)).Validate(), binding.ErrInvalidCode), true)
}

func TestForPad(t *testing.T) {
	test.ExpectEquality(t, binding.Button(0, binding.ButtonB).ForPad(3), binding.Button(3, binding.ButtonB))
	test.ExpectEquality(t, binding.KeyboardKey(binding.KeyB).ForPad(3), binding.KeyboardKey(binding.KeyB))
}

func TestResolve(t *testing.T) {
	d := virtual.NewDevice()
	space := binding.KeyboardKey(binding.KeySpace)

	d.Press(binding.KeySpace)
	d.Frame()
	s := binding.Resolve(d, space)
	test.ExpectEquality(t, s, binding.Sample{Down: true, Held: true, Value: 1})

	// idempotent within a frame
	test.ExpectEquality(t, binding.Resolve(d, space), s)

	d.Release(binding.KeySpace)
	d.Frame()
	test.ExpectEquality(t, binding.Resolve(d, space), binding.Sample{Up: true})
}

func TestResolveModifiers(t *testing.T) {
	d := virtual.NewDevice()
	save := binding.KeyboardKey(binding.KeyS).WithModifiers(binding.ModControl)

	d.Press(binding.KeyS)
	d.Frame()
	test.ExpectEquality(t, binding.Resolve(d, save), binding.Sample{})

	d.Press(binding.KeyRightControl)
	d.Frame()
	test.ExpectEquality(t, binding.Resolve(d, save).Held, true)
	test.ExpectEquality(t, binding.ModifiersHeld(d, binding.ModControl|binding.ModShift), false)
}

func TestResolveGamepad(t *testing.T) {
	d := virtual.NewDevice()
	d.SetAxis(0, binding.AxisLeftX, -0.5)
	d.SetTrigger(0, binding.TriggerLeft, 2)
	d.PressButton(0, binding.ButtonX)
	d.Frame()

	// disconnected
	test.ExpectEquality(t, binding.Resolve(d, binding.Axis(0, binding.AxisLeftX)), binding.Sample{})

	d.Connect(0)
	d.Frame()
	test.ExpectEquality(t, binding.Resolve(d, binding.Axis(0, binding.AxisLeftX)), binding.Sample{Held: true, Value: -0.5})
	test.ExpectEquality(t, binding.Resolve(d, binding.Trigger(0, binding.TriggerLeft)), binding.Sample{Held: true, Value: 1})
	test.ExpectEquality(t, binding.Resolve(d, binding.Button(0, binding.ButtonX)), binding.Sample{Held: true, Value: 1})

	// unknown controller index
	test.ExpectEquality(t, binding.Resolve(d, binding.Button(7, binding.ButtonX)), binding.Sample{})

	// values that are not a number are neutral
	d.SetAxis(0, binding.AxisLeftX, math.NaN())
	d.SetTrigger(0, binding.TriggerLeft, math.NaN())
	d.Frame()
	test.ExpectEquality(t, binding.Resolve(d, binding.Axis(0, binding.AxisLeftX)), binding.Sample{})
	test.ExpectEquality(t, binding.Resolve(d, binding.Trigger(0, binding.TriggerLeft)), binding.Sample{})
}
