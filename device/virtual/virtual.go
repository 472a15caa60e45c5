// Package virtual implements a binding.Device that is driven by function calls
// rather than by hardware. It is used to drive controls deterministically in
// tests and to inject input from the monitor.
//
// Changes made with Press(), Release(), SetAxis() etc. are pending until the
// next call to Frame(). Frame() makes the pending state current and the edge
// functions (KeyDown(), KeyUp() etc.) compare the current state with the
// state of the previous frame.
package virtual

import (
	"maps"

	"github.com/jetsetilly/inputmaster/binding"
)

type padButton struct {
	pad    int
	button binding.GamepadButton
}

type state struct {
	keys      map[binding.Key]bool
	mouse     map[binding.MouseButton]bool
	buttons   map[padButton]bool
	axes      [binding.MaxControllers][4]float64
	triggers  [binding.MaxControllers][2]float64
	connected [binding.MaxControllers]bool
	cursor    [2]float64
	wheel     [2]float64
}

func newState() state {
	return state{
		keys:    make(map[binding.Key]bool),
		mouse:   make(map[binding.MouseButton]bool),
		buttons: make(map[padButton]bool),
	}
}

func (s state) clone() state {
	c := s
	c.keys = maps.Clone(s.keys)
	c.mouse = maps.Clone(s.mouse)
	c.buttons = maps.Clone(s.buttons)
	return c
}

// Device is a virtual input device. The zero value is not usable, use
// NewDevice()
type Device struct {
	pending state
	cur     state
	prev    state
}

// NewDevice is the preferred method of initialisation for the Device type
func NewDevice() *Device {
	return &Device{
		pending: newState(),
		cur:     newState(),
		prev:    newState(),
	}
}

// Frame makes the pending state current. It should be called once per frame,
// before the controls are updated
func (d *Device) Frame() {
	d.prev = d.cur
	d.cur = d.pending.clone()

	// the wheel is a per-frame delta
	d.pending.wheel = [2]float64{}
}

// Press a key
func (d *Device) Press(k binding.Key) {
	d.pending.keys[k] = true
}

// Release a key
func (d *Device) Release(k binding.Key) {
	delete(d.pending.keys, k)
}

// PressMouse presses a mouse button
func (d *Device) PressMouse(b binding.MouseButton) {
	d.pending.mouse[b] = true
}

// ReleaseMouse releases a mouse button
func (d *Device) ReleaseMouse(b binding.MouseButton) {
	delete(d.pending.mouse, b)
}

// MoveCursor sets the cursor position
func (d *Device) MoveCursor(x, y float64) {
	d.pending.cursor = [2]float64{x, y}
}

// ScrollWheel adds to the wheel delta for the next frame
func (d *Device) ScrollWheel(x, y float64) {
	d.pending.wheel[0] += x
	d.pending.wheel[1] += y
}

// Connect a gamepad. Gamepad functions for a pad that is not connected have
// no effect on the values reported by the device
func (d *Device) Connect(pad int) {
	if pad >= 0 && pad < binding.MaxControllers {
		d.pending.connected[pad] = true
	}
}

// Disconnect a gamepad
func (d *Device) Disconnect(pad int) {
	if pad >= 0 && pad < binding.MaxControllers {
		d.pending.connected[pad] = false
	}
}

// PressButton presses a gamepad button
func (d *Device) PressButton(pad int, b binding.GamepadButton) {
	d.pending.buttons[padButton{pad: pad, button: b}] = true
}

// ReleaseButton releases a gamepad button
func (d *Device) ReleaseButton(pad int, b binding.GamepadButton) {
	delete(d.pending.buttons, padButton{pad: pad, button: b})
}

// SetAxis sets the position of a stick axis
func (d *Device) SetAxis(pad int, a binding.GamepadAxis, v float64) {
	if pad >= 0 && pad < binding.MaxControllers && a.Valid() {
		d.pending.axes[pad][a] = v
	}
}

// SetTrigger sets the position of a trigger
func (d *Device) SetTrigger(pad int, s binding.TriggerSide, v float64) {
	if pad >= 0 && pad < binding.MaxControllers && s.Valid() {
		d.pending.triggers[pad][s] = v
	}
}

// Apply presses or releases the input described by the binding. Analogue
// bindings are set to v when press is true and to zero otherwise. Gamepad
// bindings connect the gamepad if necessary
func (d *Device) Apply(b binding.Binding, press bool, v float64) {
	if !press {
		v = 0
	}
	if b.IsGamepad() {
		d.Connect(b.Pad)
	}
	switch b.Kind {
	case binding.KindKey:
		if press {
			d.Press(binding.Key(b.Code))
		} else {
			d.Release(binding.Key(b.Code))
		}
	case binding.KindMouseButton:
		if press {
			d.PressMouse(binding.MouseButton(b.Code))
		} else {
			d.ReleaseMouse(binding.MouseButton(b.Code))
		}
	case binding.KindGamepadButton:
		if press {
			d.PressButton(b.Pad, binding.GamepadButton(b.Code))
		} else {
			d.ReleaseButton(b.Pad, binding.GamepadButton(b.Code))
		}
	case binding.KindGamepadAxis:
		d.SetAxis(b.Pad, binding.GamepadAxis(b.Code), v)
	case binding.KindGamepadTrigger:
		d.SetTrigger(b.Pad, binding.TriggerSide(b.Code), v)
	}
}

// ReleaseAll releases every key and button and centres every analogue input.
// Gamepads stay connected
func (d *Device) ReleaseAll() {
	connected := d.pending.connected
	cursor := d.pending.cursor
	d.pending = newState()
	d.pending.connected = connected
	d.pending.cursor = cursor
}

// KeyDown implements the binding.Device interface
func (d *Device) KeyDown(k binding.Key) bool {
	return d.cur.keys[k] && !d.prev.keys[k]
}

// KeyHeld implements the binding.Device interface
func (d *Device) KeyHeld(k binding.Key) bool {
	return d.cur.keys[k]
}

// KeyUp implements the binding.Device interface
func (d *Device) KeyUp(k binding.Key) bool {
	return !d.cur.keys[k] && d.prev.keys[k]
}

// MouseButtonDown implements the binding.Device interface
func (d *Device) MouseButtonDown(b binding.MouseButton) bool {
	return d.cur.mouse[b] && !d.prev.mouse[b]
}

// MouseButtonHeld implements the binding.Device interface
func (d *Device) MouseButtonHeld(b binding.MouseButton) bool {
	return d.cur.mouse[b]
}

// MouseButtonUp implements the binding.Device interface
func (d *Device) MouseButtonUp(b binding.MouseButton) bool {
	return !d.cur.mouse[b] && d.prev.mouse[b]
}

// GamepadButtonPressed implements the binding.Device interface
func (d *Device) GamepadButtonPressed(pad int, b binding.GamepadButton) bool {
	if !d.GamepadConnected(pad) {
		return false
	}
	return d.cur.buttons[padButton{pad: pad, button: b}]
}

// StickAxis implements the binding.Device interface
func (d *Device) StickAxis(pad int, a binding.GamepadAxis) float64 {
	if !d.GamepadConnected(pad) || !a.Valid() {
		return 0
	}
	return d.cur.axes[pad][a]
}

// TriggerValue implements the binding.Device interface
func (d *Device) TriggerValue(pad int, s binding.TriggerSide) float64 {
	if !d.GamepadConnected(pad) || !s.Valid() {
		return 0
	}
	return d.cur.triggers[pad][s]
}

// GamepadConnected implements the binding.Device interface
func (d *Device) GamepadConnected(pad int) bool {
	if pad < 0 || pad >= binding.MaxControllers {
		return false
	}
	return d.cur.connected[pad]
}

// CursorPosition implements the binding.Pointer interface
func (d *Device) CursorPosition() (float64, float64) {
	return d.cur.cursor[0], d.cur.cursor[1]
}

// Wheel implements the binding.Pointer interface
func (d *Device) Wheel() (float64, float64) {
	return d.cur.wheel[0], d.cur.wheel[1]
}
