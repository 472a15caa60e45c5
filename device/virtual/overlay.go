package virtual

import (
	"github.com/jetsetilly/inputmaster/binding"
)

// Overlay combines a hardware device with a virtual device. Digital inputs
// are active if they are active on either device. Analogue inputs are the
// clamped sum of both devices
type Overlay struct {
	Base    binding.Device
	Virtual *Device
}

// NewOverlay returns an Overlay with a new virtual device on top of base
func NewOverlay(base binding.Device) *Overlay {
	return &Overlay{
		Base:    base,
		Virtual: NewDevice(),
	}
}

// Frame advances the virtual device. The base device is not touched
func (o *Overlay) Frame() {
	o.Virtual.Frame()
}

// KeyDown implements the binding.Device interface. A key is only down if it
// was not held on either device in the previous frame
func (o *Overlay) KeyDown(k binding.Key) bool {
	baseWas := (o.Base.KeyHeld(k) && !o.Base.KeyDown(k)) || o.Base.KeyUp(k)
	return (o.Base.KeyDown(k) || o.Virtual.KeyDown(k)) && !baseWas && !o.Virtual.prev.keys[k]
}

// KeyHeld implements the binding.Device interface
func (o *Overlay) KeyHeld(k binding.Key) bool {
	return o.Base.KeyHeld(k) || o.Virtual.KeyHeld(k)
}

// KeyUp implements the binding.Device interface
func (o *Overlay) KeyUp(k binding.Key) bool {
	return (o.Base.KeyUp(k) || o.Virtual.KeyUp(k)) && !o.KeyHeld(k)
}

// MouseButtonDown implements the binding.Device interface
func (o *Overlay) MouseButtonDown(b binding.MouseButton) bool {
	baseWas := (o.Base.MouseButtonHeld(b) && !o.Base.MouseButtonDown(b)) || o.Base.MouseButtonUp(b)
	return (o.Base.MouseButtonDown(b) || o.Virtual.MouseButtonDown(b)) && !baseWas && !o.Virtual.prev.mouse[b]
}

// MouseButtonHeld implements the binding.Device interface
func (o *Overlay) MouseButtonHeld(b binding.MouseButton) bool {
	return o.Base.MouseButtonHeld(b) || o.Virtual.MouseButtonHeld(b)
}

// MouseButtonUp implements the binding.Device interface
func (o *Overlay) MouseButtonUp(b binding.MouseButton) bool {
	return (o.Base.MouseButtonUp(b) || o.Virtual.MouseButtonUp(b)) && !o.MouseButtonHeld(b)
}

// GamepadButtonPressed implements the binding.Device interface
func (o *Overlay) GamepadButtonPressed(pad int, b binding.GamepadButton) bool {
	return o.Base.GamepadButtonPressed(pad, b) || o.Virtual.GamepadButtonPressed(pad, b)
}

// StickAxis implements the binding.Device interface
func (o *Overlay) StickAxis(pad int, a binding.GamepadAxis) float64 {
	return min(1, max(-1, o.Base.StickAxis(pad, a)+o.Virtual.StickAxis(pad, a)))
}

// TriggerValue implements the binding.Device interface
func (o *Overlay) TriggerValue(pad int, s binding.TriggerSide) float64 {
	return min(1, o.Base.TriggerValue(pad, s)+o.Virtual.TriggerValue(pad, s))
}

// GamepadConnected implements the binding.Device interface
func (o *Overlay) GamepadConnected(pad int) bool {
	return o.Base.GamepadConnected(pad) || o.Virtual.GamepadConnected(pad)
}

// CursorPosition implements the binding.Pointer interface. The base device
// is used if it implements the binding.Pointer interface
func (o *Overlay) CursorPosition() (float64, float64) {
	if p, ok := o.Base.(binding.Pointer); ok {
		return p.CursorPosition()
	}
	return o.Virtual.CursorPosition()
}

// Wheel implements the binding.Pointer interface
func (o *Overlay) Wheel() (float64, float64) {
	x, y := o.Virtual.Wheel()
	if p, ok := o.Base.(binding.Pointer); ok {
		bx, by := p.Wheel()
		x += bx
		y += by
	}
	return x, y
}
