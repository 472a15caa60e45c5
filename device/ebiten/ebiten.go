// Package ebiten implements binding.Device using the input functions of the
// ebiten game engine. The inpututil package provides the key and mouse button
// edges. Only gamepads with a standard layout are supported.
//
// Frame() must be called once per ebiten Update() before the controls are
// updated.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/device/slots"
	"github.com/jetsetilly/inputmaster/logger"
)

// Device reads input from ebiten
type Device struct {
	// gamepads are given a stable controller index when they connect
	ids   []ebiten.GamepadID
	slots slots.Slots[ebiten.GamepadID]

	wheel [2]float64
}

// NewDevice is the preferred method of initialisation for the Device type
func NewDevice() *Device {
	return &Device{}
}

// Frame refreshes the list of connected gamepads and samples the mouse
// wheel
func (d *Device) Frame() {
	d.ids = ebiten.AppendGamepadIDs(d.ids[:0])
	if d.slots.Assign(d.ids) {
		logger.Logf(logger.Allow, "device", "%d gamepads connected", d.slots.Count())
		for i := range binding.MaxControllers {
			id, ok := d.slots.Get(i)
			if ok && !ebiten.IsStandardGamepadLayoutAvailable(id) {
				logger.Logf(logger.Allow, "device", "%s has no standard layout", ebiten.GamepadName(id))
			}
		}
	}
	d.wheel[0], d.wheel[1] = ebiten.Wheel()
}

func (d *Device) gamepad(pad int) (ebiten.GamepadID, bool) {
	id, ok := d.slots.Get(pad)
	if !ok {
		return 0, false
	}
	return id, ebiten.IsStandardGamepadLayoutAvailable(id)
}

// KeyDown implements the binding.Device interface
func (d *Device) KeyDown(k binding.Key) bool {
	if ek, ok := keys[k]; ok {
		return inpututil.IsKeyJustPressed(ek)
	}
	return false
}

// KeyHeld implements the binding.Device interface
func (d *Device) KeyHeld(k binding.Key) bool {
	if ek, ok := keys[k]; ok {
		return ebiten.IsKeyPressed(ek)
	}
	return false
}

// KeyUp implements the binding.Device interface
func (d *Device) KeyUp(k binding.Key) bool {
	if ek, ok := keys[k]; ok {
		return inpututil.IsKeyJustReleased(ek)
	}
	return false
}

// MouseButtonDown implements the binding.Device interface
func (d *Device) MouseButtonDown(b binding.MouseButton) bool {
	if eb, ok := mouseButtons[b]; ok {
		return inpututil.IsMouseButtonJustPressed(eb)
	}
	return false
}

// MouseButtonHeld implements the binding.Device interface
func (d *Device) MouseButtonHeld(b binding.MouseButton) bool {
	if eb, ok := mouseButtons[b]; ok {
		return ebiten.IsMouseButtonPressed(eb)
	}
	return false
}

// MouseButtonUp implements the binding.Device interface
func (d *Device) MouseButtonUp(b binding.MouseButton) bool {
	if eb, ok := mouseButtons[b]; ok {
		return inpututil.IsMouseButtonJustReleased(eb)
	}
	return false
}

// GamepadButtonPressed implements the binding.Device interface
func (d *Device) GamepadButtonPressed(pad int, b binding.GamepadButton) bool {
	id, ok := d.gamepad(pad)
	if !ok {
		return false
	}
	if eb, ok := buttons[b]; ok {
		return ebiten.IsStandardGamepadButtonPressed(id, eb)
	}
	return false
}

// StickAxis implements the binding.Device interface. ebiten reports the
// vertical axes as positive when the stick is pushed down so they are negated
func (d *Device) StickAxis(pad int, a binding.GamepadAxis) float64 {
	id, ok := d.gamepad(pad)
	if !ok {
		return 0
	}
	ea, ok := axes[a]
	if !ok {
		return 0
	}
	v := ebiten.StandardGamepadAxisValue(id, ea)
	if a == binding.AxisLeftY || a == binding.AxisRightY {
		v = -v
	}
	return v
}

// TriggerValue implements the binding.Device interface
func (d *Device) TriggerValue(pad int, s binding.TriggerSide) float64 {
	id, ok := d.gamepad(pad)
	if !ok {
		return 0
	}
	if eb, ok := triggers[s]; ok {
		return ebiten.StandardGamepadButtonValue(id, eb)
	}
	return 0
}

// GamepadConnected implements the binding.Device interface
func (d *Device) GamepadConnected(pad int) bool {
	_, ok := d.gamepad(pad)
	return ok
}

// CursorPosition implements the binding.Pointer interface
func (d *Device) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// Wheel implements the binding.Pointer interface
func (d *Device) Wheel() (float64, float64) {
	return d.wheel[0], d.wheel[1]
}

// Vibrate the gamepad for the duration. Strength is in the range 0 to 1
func (d *Device) Vibrate(pad int, strength float64, duration time.Duration) {
	id, ok := d.slots.Get(pad)
	if !ok {
		return
	}
	strength = max(0, min(1, strength))
	ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
		Duration:        duration,
		StrongMagnitude: strength,
		WeakMagnitude:   strength,
	})
}

// StopVibration stops every gamepad from vibrating
func (d *Device) StopVibration() {
	for i := range binding.MaxControllers {
		if id, ok := d.slots.Get(i); ok {
			ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{})
		}
	}
}
