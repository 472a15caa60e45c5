package binding

import "math"

// Device is the raw polling backend. All queries refer to the state of the
// device for the current frame and must be free of side effects.
//
// KeyHeld() is true for every frame in which the key is pressed, including
// the frame in which KeyDown() is true. KeyUp() is true only in the frame in
// which the key was released. The same applies to the mouse button
// functions.
//
// Gamepad buttons are reported as a simple pressed state. Stick axes are in
// the range -1 to 1 with the Y axes positive when pushed up. Triggers are in
// the range 0 to 1. A disconnected or unknown gamepad reports neutral values.
type Device interface {
	KeyDown(Key) bool
	KeyHeld(Key) bool
	KeyUp(Key) bool
	MouseButtonDown(MouseButton) bool
	MouseButtonHeld(MouseButton) bool
	MouseButtonUp(MouseButton) bool
	GamepadButtonPressed(pad int, b GamepadButton) bool
	StickAxis(pad int, a GamepadAxis) float64
	TriggerValue(pad int, s TriggerSide) float64
	GamepadConnected(pad int) bool
}

// Pointer is implemented by devices that can report the mouse pointer
type Pointer interface {
	CursorPosition() (x, y float64)
	Wheel() (x, y float64)
}

// Sample is the resolved state of a binding for a single frame
type Sample struct {
	Down  bool
	Held  bool
	Up    bool
	Value float64
}

// Active returns true if the sample is held or has a nonzero value
func (s Sample) Active() bool {
	return s.Held || s.Down || s.Value != 0
}

// ModifiersHeld returns true if every modifier in the set is held. Either the
// left or right key satisfies a modifier
func ModifiersHeld(dev Device, mods Modifiers) bool {
	held := func(l, r Key) bool {
		return dev.KeyHeld(l) || dev.KeyDown(l) || dev.KeyHeld(r) || dev.KeyDown(r)
	}
	if mods&ModControl == ModControl && !held(KeyLeftControl, KeyRightControl) {
		return false
	}
	if mods&ModAlt == ModAlt && !held(KeyLeftAlt, KeyRightAlt) {
		return false
	}
	if mods&ModShift == ModShift && !held(KeyLeftShift, KeyRightShift) {
		return false
	}
	return true
}

// Resolve samples the binding from the device. An unbound binding, a binding
// whose modifiers are not held and a binding for a disconnected gamepad all
// resolve to the zero Sample
func Resolve(dev Device, b Binding) Sample {
	if dev == nil || b.Kind == KindNone {
		return Sample{}
	}

	if b.Mods != ModNone && !ModifiersHeld(dev, b.Mods) {
		return Sample{}
	}

	if b.IsGamepad() {
		if b.Pad < 0 || b.Pad >= MaxControllers || !dev.GamepadConnected(b.Pad) {
			return Sample{}
		}
	}

	var s Sample

	switch b.Kind {
	case KindKey:
		k := Key(b.Code)
		if !k.Valid() {
			return Sample{}
		}
		s.Down = dev.KeyDown(k)
		s.Held = dev.KeyHeld(k) || s.Down
		s.Up = dev.KeyUp(k) && !s.Held

	case KindMouseButton:
		m := MouseButton(b.Code)
		if !m.Valid() {
			return Sample{}
		}
		s.Down = dev.MouseButtonDown(m)
		s.Held = dev.MouseButtonHeld(m) || s.Down
		s.Up = dev.MouseButtonUp(m) && !s.Held

	case KindGamepadButton:
		g := GamepadButton(b.Code)
		if !g.Valid() {
			return Sample{}
		}
		s.Held = dev.GamepadButtonPressed(b.Pad, g)

	case KindGamepadAxis:
		a := GamepadAxis(b.Code)
		if !a.Valid() {
			return Sample{}
		}
		s.Value = clamp(dev.StickAxis(b.Pad, a), -1, 1)
		s.Held = s.Value != 0
		return s

	case KindGamepadTrigger:
		t := TriggerSide(b.Code)
		if !t.Valid() {
			return Sample{}
		}
		s.Value = clamp(dev.TriggerValue(b.Pad, t), 0, 1)
		s.Held = s.Value != 0
		return s
	}

	if s.Held {
		s.Value = 1
	}

	return s
}

// clamp v to the range lo to hi. a value that is not a number is treated as
// neutral
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
