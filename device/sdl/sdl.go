// Package sdl implements binding.Device using SDL2. Gamepads are opened with
// the SDL game controller API so any controller with an SDL mapping is
// supported.
//
// SDL only reports keyboard and mouse state for windows that it owns. A
// Device can therefore be given another device to answer the keyboard and
// mouse queries, leaving SDL to look after the gamepads.
package sdl

import (
	"fmt"
	"math"
	"time"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/device/slots"
	"github.com/jetsetilly/inputmaster/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Device reads input from SDL
type Device struct {
	// if keyboard is not nil then keyboard and mouse queries are passed to it
	keyboard binding.Device

	// open gamepads by joystick instance ID. the slots give each gamepad a
	// stable controller index
	pads  map[sdl.JoystickID]*sdl.GameController
	slots slots.Slots[sdl.JoystickID]

	// number of joysticks when the gamepads were last opened
	numJoysticks int

	keys     []uint8
	prevKeys []uint8

	mouse     uint32
	prevMouse uint32
	cursor    [2]int32
}

// NewDevice initialises the SDL game controller subsystem and opens every
// attached gamepad. The keyboard argument can be nil
func NewDevice(keyboard binding.Device) (*Device, error) {
	err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	d := &Device{
		keyboard: keyboard,
		pads:     make(map[sdl.JoystickID]*sdl.GameController),
	}
	d.openGamepads()

	return d, nil
}

// openGamepads opens gamepads that have been attached since the last call
// and closes those that have been removed
func (d *Device) openGamepads() {
	d.numJoysticks = sdl.NumJoysticks()

	var connected []sdl.JoystickID
	for i := 0; i < d.numJoysticks; i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		id := sdl.JoystickGetDeviceInstanceID(i)
		if _, ok := d.pads[id]; !ok {
			pad := sdl.GameControllerOpen(i)
			if pad == nil || !pad.Attached() {
				continue
			}
			logger.Logf(logger.Allow, "device", "sdl gamepad: %s", pad.Name())
			d.pads[id] = pad
		}
		connected = append(connected, id)
	}

	for id, pad := range d.pads {
		if !pad.Attached() {
			pad.Close()
			delete(d.pads, id)
		}
	}

	d.slots.Assign(connected)

	if d.slots.Count() == 0 {
		logger.Log(logger.Allow, "device", "sdl: no gamepads found")
	}
}

func (d *Device) closeGamepads() {
	for id, pad := range d.pads {
		pad.Close()
		delete(d.pads, id)
	}
	d.slots.Assign(nil)
}

// Destroy closes every gamepad and shuts down the subsystem
func (d *Device) Destroy() {
	d.closeGamepads()
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS)
}

// Frame samples the current state of SDL. Gamepads are opened and closed if
// the number of joysticks has changed
func (d *Device) Frame() {
	sdl.PumpEvents()
	sdl.GameControllerUpdate()

	if sdl.NumJoysticks() != d.numJoysticks {
		d.openGamepads()
	}

	if d.keyboard != nil {
		return
	}

	d.prevKeys = append(d.prevKeys[:0], d.keys...)
	d.keys = append(d.keys[:0], sdl.GetKeyboardState()...)

	d.prevMouse = d.mouse
	d.cursor[0], d.cursor[1], d.mouse = sdl.GetMouseState()
}

func (d *Device) key(keys []uint8, k binding.Key) bool {
	sc, ok := scancodes[k]
	if !ok || int(sc) >= len(keys) {
		return false
	}
	return keys[sc] != 0
}

// KeyDown implements the binding.Device interface
func (d *Device) KeyDown(k binding.Key) bool {
	if d.keyboard != nil {
		return d.keyboard.KeyDown(k)
	}
	return d.key(d.keys, k) && !d.key(d.prevKeys, k)
}

// KeyHeld implements the binding.Device interface
func (d *Device) KeyHeld(k binding.Key) bool {
	if d.keyboard != nil {
		return d.keyboard.KeyHeld(k)
	}
	return d.key(d.keys, k)
}

// KeyUp implements the binding.Device interface
func (d *Device) KeyUp(k binding.Key) bool {
	if d.keyboard != nil {
		return d.keyboard.KeyUp(k)
	}
	return !d.key(d.keys, k) && d.key(d.prevKeys, k)
}

// MouseButtonDown implements the binding.Device interface
func (d *Device) MouseButtonDown(b binding.MouseButton) bool {
	if d.keyboard != nil {
		return d.keyboard.MouseButtonDown(b)
	}
	m := mouseButtons[b]
	return d.mouse&m != 0 && d.prevMouse&m == 0
}

// MouseButtonHeld implements the binding.Device interface
func (d *Device) MouseButtonHeld(b binding.MouseButton) bool {
	if d.keyboard != nil {
		return d.keyboard.MouseButtonHeld(b)
	}
	m := mouseButtons[b]
	return d.mouse&m != 0
}

// MouseButtonUp implements the binding.Device interface
func (d *Device) MouseButtonUp(b binding.MouseButton) bool {
	if d.keyboard != nil {
		return d.keyboard.MouseButtonUp(b)
	}
	m := mouseButtons[b]
	return d.mouse&m == 0 && d.prevMouse&m != 0
}

func (d *Device) pad(pad int) *sdl.GameController {
	id, ok := d.slots.Get(pad)
	if !ok {
		return nil
	}
	p := d.pads[id]
	if p == nil || !p.Attached() {
		return nil
	}
	return p
}

// GamepadButtonPressed implements the binding.Device interface
func (d *Device) GamepadButtonPressed(pad int, b binding.GamepadButton) bool {
	p := d.pad(pad)
	if p == nil {
		return false
	}
	if sb, ok := buttons[b]; ok {
		return p.Button(sb) != 0
	}
	return false
}

// normalise an SDL axis value to the range -1 to 1
func normalise(v int16) float64 {
	return math.Max(-1, float64(v)/math.MaxInt16)
}

// StickAxis implements the binding.Device interface. SDL reports the vertical
// axes as positive when the stick is pushed down so they are negated
func (d *Device) StickAxis(pad int, a binding.GamepadAxis) float64 {
	p := d.pad(pad)
	if p == nil {
		return 0
	}
	sa, ok := axes[a]
	if !ok {
		return 0
	}
	v := normalise(p.Axis(sa))
	if a == binding.AxisLeftY || a == binding.AxisRightY {
		v = -v
	}
	return v
}

// TriggerValue implements the binding.Device interface
func (d *Device) TriggerValue(pad int, s binding.TriggerSide) float64 {
	p := d.pad(pad)
	if p == nil {
		return 0
	}
	if sa, ok := triggers[s]; ok {
		return math.Max(0, normalise(p.Axis(sa)))
	}
	return 0
}

// GamepadConnected implements the binding.Device interface
func (d *Device) GamepadConnected(pad int) bool {
	return d.pad(pad) != nil
}

// CursorPosition implements the binding.Pointer interface
func (d *Device) CursorPosition() (float64, float64) {
	if p, ok := d.keyboard.(binding.Pointer); ok {
		return p.CursorPosition()
	}
	return float64(d.cursor[0]), float64(d.cursor[1])
}

// Wheel implements the binding.Pointer interface. SDL only reports the wheel
// through events so without a keyboard device the wheel never moves
func (d *Device) Wheel() (float64, float64) {
	if p, ok := d.keyboard.(binding.Pointer); ok {
		return p.Wheel()
	}
	return 0, 0
}

// Vibrate the gamepad for the duration. Strength is in the range 0 to 1
func (d *Device) Vibrate(pad int, strength float64, duration time.Duration) {
	p := d.pad(pad)
	if p == nil {
		return
	}
	v := uint16(max(0, min(1, strength)) * math.MaxUint16)
	err := p.Rumble(v, v, uint32(duration.Milliseconds()))
	if err != nil {
		logger.Logf(logger.Allow, "device", "sdl: %v", err)
	}
}

// StopVibration stops every gamepad from vibrating
func (d *Device) StopVibration() {
	for _, p := range d.pads {
		_ = p.Rumble(0, 0, 0)
	}
}
