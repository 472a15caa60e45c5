// Package binding describes the physical inputs that a control can be bound
// to and resolves them against a Device.
//
// A Binding is a small comparable value. It can be used as a map key and it
// never changes once a control has been constructed. The Kind field says
// which of the other fields are meaningful:
//
//	KindKey             Code is a Key
//	KindMouseButton     Code is a MouseButton
//	KindGamepadButton   Code is a GamepadButton, Pad is the controller index
//	KindGamepadAxis     Code is a GamepadAxis, Pad is the controller index
//	KindGamepadTrigger  Code is a TriggerSide, Pad is the controller index
//
// Any binding can carry a set of Modifiers. A binding with modifiers only
// resolves to an active sample when all of the modifiers are held.
package binding

import (
	"errors"
	"fmt"
	"strings"
)

// MaxControllers is the number of local players supported
const MaxControllers = 4

// Sentinel errors returned by Validate() and Parse()
var (
	ErrUnbound         = errors.New("binding is unbound")
	ErrInvalidCode     = errors.New("binding code is invalid")
	ErrControllerRange = errors.New("controller index out of range")
	ErrUnknownName     = errors.New("unknown binding name")
)

// Kind of physical input
type Kind int

// List of valid Kind values
const (
	KindNone Kind = iota
	KindKey
	KindMouseButton
	KindGamepadButton
	KindGamepadAxis
	KindGamepadTrigger
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindKey:
		return "Key"
	case KindMouseButton:
		return "MouseButton"
	case KindGamepadButton:
		return "GamepadButton"
	case KindGamepadAxis:
		return "GamepadAxis"
	case KindGamepadTrigger:
		return "GamepadTrigger"
	}
	return "Unknown"
}

// Modifiers is a bitmask of modifier keys that must be held for a binding to
// be active
type Modifiers uint8

// List of Modifiers flags
const (
	ModNone    Modifiers = 0
	ModControl Modifiers = 1 << 0
	ModAlt     Modifiers = 1 << 1
	ModShift   Modifiers = 1 << 2
)

func (m Modifiers) String() string {
	var s strings.Builder
	if m&ModControl == ModControl {
		s.WriteString("Ctrl+")
	}
	if m&ModAlt == ModAlt {
		s.WriteString("Alt+")
	}
	if m&ModShift == ModShift {
		s.WriteString("Shift+")
	}
	return s.String()
}

// Binding is a physical input with an optional set of modifiers
type Binding struct {
	Kind Kind
	Code int
	Pad  int
	Mods Modifiers
}

// None is the unbound binding
var None = Binding{}

// KeyboardKey returns a binding for a keyboard key
func KeyboardKey(k Key) Binding {
	return Binding{Kind: KindKey, Code: int(k)}
}

// Mouse returns a binding for a mouse button
func Mouse(b MouseButton) Binding {
	return Binding{Kind: KindMouseButton, Code: int(b)}
}

// Button returns a binding for a button on the gamepad with the controller
// index pad
func Button(pad int, b GamepadButton) Binding {
	return Binding{Kind: KindGamepadButton, Code: int(b), Pad: pad}
}

// Axis returns a binding for a stick axis on the gamepad with the controller
// index pad
func Axis(pad int, a GamepadAxis) Binding {
	return Binding{Kind: KindGamepadAxis, Code: int(a), Pad: pad}
}

// Trigger returns a binding for an analogue trigger on the gamepad with the
// controller index pad
func Trigger(pad int, s TriggerSide) Binding {
	return Binding{Kind: KindGamepadTrigger, Code: int(s), Pad: pad}
}

// WithModifiers returns a copy of the binding with the modifiers set
func (b Binding) WithModifiers(m Modifiers) Binding {
	b.Mods = m
	return b
}

// ForPad returns a copy of the binding retargeted to controller index pad.
// Bindings that are not gamepad bindings are returned unchanged
func (b Binding) ForPad(pad int) Binding {
	if b.IsGamepad() {
		b.Pad = pad
	}
	return b
}

// IsNone returns true if the binding is unbound
func (b Binding) IsNone() bool {
	return b.Kind == KindNone
}

// IsGamepad returns true if the binding is for a gamepad input of any type
func (b Binding) IsGamepad() bool {
	return b.Kind == KindGamepadButton || b.Kind == KindGamepadAxis || b.Kind == KindGamepadTrigger
}

// IsAnalog returns true if the binding is for a stick axis or trigger
func (b Binding) IsAnalog() bool {
	return b.Kind == KindGamepadAxis || b.Kind == KindGamepadTrigger
}

// Validate returns an error if the binding is unbound or if any of its
// fields are out of range
func (b Binding) Validate() error {
	var ok bool
	switch b.Kind {
	case KindNone:
		return ErrUnbound
	case KindKey:
		ok = Key(b.Code).Valid()
	case KindMouseButton:
		ok = MouseButton(b.Code).Valid()
	case KindGamepadButton:
		ok = GamepadButton(b.Code).Valid()
	case KindGamepadAxis:
		ok = GamepadAxis(b.Code).Valid()
	case KindGamepadTrigger:
		ok = TriggerSide(b.Code).Valid()
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidCode, b.Kind)
	}
	if !ok {
		return fmt.Errorf("%w: %s code %d", ErrInvalidCode, b.Kind, b.Code)
	}
	if b.IsGamepad() && (b.Pad < 0 || b.Pad >= MaxControllers) {
		return fmt.Errorf("%w: %d", ErrControllerRange, b.Pad)
	}
	return nil
}

func (b Binding) String() string {
	var s string
	switch b.Kind {
	case KindNone:
		return "None"
	case KindKey:
		s = Key(b.Code).String()
	case KindMouseButton:
		s = fmt.Sprintf("Mouse:%s", MouseButton(b.Code))
	case KindGamepadButton:
		s = fmt.Sprintf("Pad%d:%s", b.Pad, GamepadButton(b.Code))
	case KindGamepadAxis:
		s = fmt.Sprintf("Pad%d:%s", b.Pad, GamepadAxis(b.Code))
	case KindGamepadTrigger:
		s = fmt.Sprintf("Pad%d:%s", b.Pad, TriggerSide(b.Code))
	default:
		return "Unknown"
	}
	return b.Mods.String() + s
}

// Parse is the inverse of String(). Names are case insensitive
func Parse(name string) (Binding, error) {
	orig := name
	name = strings.TrimSpace(name)

	var mods Modifiers
	for {
		p, rest, ok := strings.Cut(name, "+")
		if !ok {
			break
		}
		switch strings.ToUpper(p) {
		case "CTRL":
			mods |= ModControl
		case "ALT":
			mods |= ModAlt
		case "SHIFT":
			mods |= ModShift
		default:
			return None, fmt.Errorf("%w: %s", ErrUnknownName, orig)
		}
		name = rest
	}

	if strings.EqualFold(name, "None") && mods == ModNone {
		return None, nil
	}

	device, input, found := strings.Cut(name, ":")
	if !found {
		for i, n := range keyNames {
			if i != int(KeyUnknown) && strings.EqualFold(n, name) {
				return KeyboardKey(Key(i)).WithModifiers(mods), nil
			}
		}
		return None, fmt.Errorf("%w: %s", ErrUnknownName, orig)
	}

	if strings.EqualFold(device, "Mouse") {
		for i, n := range mouseNames {
			if strings.EqualFold(n, input) {
				return Mouse(MouseButton(i)).WithModifiers(mods), nil
			}
		}
		return None, fmt.Errorf("%w: %s", ErrUnknownName, orig)
	}

	var pad int
	if _, err := fmt.Sscanf(strings.ToUpper(device), "PAD%d", &pad); err != nil {
		return None, fmt.Errorf("%w: %s", ErrUnknownName, orig)
	}
	if pad < 0 || pad >= MaxControllers {
		return None, fmt.Errorf("%w: %d", ErrControllerRange, pad)
	}

	for i, n := range buttonNames {
		if strings.EqualFold(n, input) {
			return Button(pad, GamepadButton(i)).WithModifiers(mods), nil
		}
	}
	for i, n := range axisNames {
		if strings.EqualFold(n, input) {
			return Axis(pad, GamepadAxis(i)).WithModifiers(mods), nil
		}
	}
	for i, n := range triggerNames {
		if strings.EqualFold(n, input) {
			return Trigger(pad, TriggerSide(i)).WithModifiers(mods), nil
		}
	}

	return None, fmt.Errorf("%w: %s", ErrUnknownName, orig)
}
