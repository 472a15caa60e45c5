package virtual_test

import (
	"testing"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/device/virtual"
	"github.com/jetsetilly/inputmaster/test"
)

func TestKeyEdges(t *testing.T) {
	d := virtual.NewDevice()

	d.Press(binding.KeySpace)
	test.ExpectEquality(t, d.KeyHeld(binding.KeySpace), false, "pending")

	d.Frame()
	test.ExpectEquality(t, d.KeyDown(binding.KeySpace), true)
	test.ExpectEquality(t, d.KeyHeld(binding.KeySpace), true)
	test.ExpectEquality(t, d.KeyUp(binding.KeySpace), false)

	d.Frame()
	test.ExpectEquality(t, d.KeyDown(binding.KeySpace), false)
	test.ExpectEquality(t, d.KeyHeld(binding.KeySpace), true)

	d.Release(binding.KeySpace)
	d.Frame()
	test.ExpectEquality(t, d.KeyHeld(binding.KeySpace), false)
	test.ExpectEquality(t, d.KeyUp(binding.KeySpace), true)

	d.Frame()
	test.ExpectEquality(t, d.KeyUp(binding.KeySpace), false)
}

func TestGamepadConnection(t *testing.T) {
	d := virtual.NewDevice()
	d.SetAxis(1, binding.AxisLeftX, 0.5)
	d.PressButton(1, binding.ButtonA)
	d.Frame()

	// not connected so values are neutral
	test.ExpectEquality(t, d.StickAxis(1, binding.AxisLeftX), 0.0)
	test.ExpectEquality(t, d.GamepadButtonPressed(1, binding.ButtonA), false)

	d.Connect(1)
	d.Frame()
	test.ExpectEquality(t, d.StickAxis(1, binding.AxisLeftX), 0.5)
	test.ExpectEquality(t, d.GamepadButtonPressed(1, binding.ButtonA), true)
	test.ExpectEquality(t, d.GamepadConnected(0), false)
	test.ExpectEquality(t, d.GamepadConnected(binding.MaxControllers), false)
}

func TestWheelIsDelta(t *testing.T) {
	d := virtual.NewDevice()
	d.ScrollWheel(0, 2)
	d.Frame()
	_, y := d.Wheel()
	test.ExpectEquality(t, y, 2.0)
	d.Frame()
	_, y = d.Wheel()
	test.ExpectEquality(t, y, 0.0)
}

func TestApply(t *testing.T) {
	d := virtual.NewDevice()
	d.Apply(binding.Trigger(2, binding.TriggerRight), true, 0.75)
	d.Apply(binding.KeyboardKey(binding.KeyW), true, 1)
	d.Frame()
	test.ExpectEquality(t, d.GamepadConnected(2), true)
	test.ExpectEquality(t, d.TriggerValue(2, binding.TriggerRight), 0.75)
	test.ExpectEquality(t, d.KeyHeld(binding.KeyW), true)

	d.ReleaseAll()
	d.Frame()
	test.ExpectEquality(t, d.GamepadConnected(2), true)
	test.ExpectEquality(t, d.TriggerValue(2, binding.TriggerRight), 0.0)
	test.ExpectEquality(t, d.KeyUp(binding.KeyW), true)
}

func TestOverlay(t *testing.T) {
	base := virtual.NewDevice()
	o := virtual.NewOverlay(base)

	// held on the base device and then pressed on the virtual device
	base.Press(binding.KeyA)
	base.Frame()
	o.Frame()
	test.ExpectEquality(t, o.KeyDown(binding.KeyA), true)

	o.Virtual.Press(binding.KeyA)
	base.Frame()
	o.Frame()
	test.ExpectEquality(t, o.KeyDown(binding.KeyA), false)
	test.ExpectEquality(t, o.KeyHeld(binding.KeyA), true)

	// released on the base device but still held on the virtual device
	base.Release(binding.KeyA)
	base.Frame()
	o.Frame()
	test.ExpectEquality(t, o.KeyUp(binding.KeyA), false)
	test.ExpectEquality(t, o.KeyHeld(binding.KeyA), true)

	o.Virtual.Release(binding.KeyA)
	base.Frame()
	o.Frame()
	test.ExpectEquality(t, o.KeyUp(binding.KeyA), true)

	// analogue values are summed and clamped
	base.Connect(0)
	o.Virtual.Connect(0)
	base.SetAxis(0, binding.AxisLeftY, 0.75)
	o.Virtual.SetAxis(0, binding.AxisLeftY, 0.5)
	base.Frame()
	o.Frame()
	test.ExpectEquality(t, o.StickAxis(0, binding.AxisLeftY), 1.0)
}
