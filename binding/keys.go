package binding

// Key is a keyboard key. Keys are independent of any backend and each device
// implementation maps them onto its own key codes
type Key int

// List of valid Key values
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftMeta
	KeyRightMeta
	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyLeftBracket
	KeyRightBracket
	KeyCapsLock

	numKeys
)

var keyNames = [numKeys]string{
	"Unknown",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Space", "Enter", "Escape", "Tab", "Backspace",
	"Insert", "Delete", "Home", "End", "PageUp", "PageDown",
	"Up", "Down", "Left", "Right",
	"LeftShift", "RightShift", "LeftControl", "RightControl",
	"LeftAlt", "RightAlt", "LeftMeta", "RightMeta",
	"Minus", "Equal", "Comma", "Period", "Slash", "Backslash",
	"Semicolon", "Quote", "Backquote", "LeftBracket", "RightBracket",
	"CapsLock",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Valid returns true if the Key is a known key
func (k Key) Valid() bool {
	return k > KeyUnknown && k < numKeys
}

// Keys returns every valid Key
func Keys() []Key {
	k := make([]Key, 0, numKeys-1)
	for i := KeyUnknown + 1; i < numKeys; i++ {
		k = append(k, i)
	}
	return k
}

// MouseButton is a button on the mouse
type MouseButton int

// List of valid MouseButton values
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	numMouseButtons
)

var mouseNames = [numMouseButtons]string{"Left", "Right", "Middle"}

func (b MouseButton) String() string {
	if b < 0 || b >= numMouseButtons {
		return "Unknown"
	}
	return mouseNames[b]
}

// Valid returns true if the MouseButton is a known button
func (b MouseButton) Valid() bool {
	return b >= 0 && b < numMouseButtons
}

// GamepadButton is a digital button on a gamepad with a standard layout
type GamepadButton int

// List of valid GamepadButton values
const (
	ButtonA GamepadButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	numGamepadButtons
)

var buttonNames = [numGamepadButtons]string{
	"A", "B", "X", "Y",
	"Back", "Guide", "Start",
	"LeftStick", "RightStick",
	"LeftShoulder", "RightShoulder",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
}

func (b GamepadButton) String() string {
	if b < 0 || b >= numGamepadButtons {
		return "Unknown"
	}
	return buttonNames[b]
}

// Valid returns true if the GamepadButton is a known button
func (b GamepadButton) Valid() bool {
	return b >= 0 && b < numGamepadButtons
}

// GamepadAxis is one axis of one of the two analogue sticks of a gamepad
type GamepadAxis int

// List of valid GamepadAxis values. The Y axes are positive when the stick is
// pushed up
const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY

	numGamepadAxes
)

var axisNames = [numGamepadAxes]string{"LeftX", "LeftY", "RightX", "RightY"}

func (a GamepadAxis) String() string {
	if a < 0 || a >= numGamepadAxes {
		return "Unknown"
	}
	return axisNames[a]
}

// Valid returns true if the GamepadAxis is a known axis
func (a GamepadAxis) Valid() bool {
	return a >= 0 && a < numGamepadAxes
}

// TriggerSide selects the left or right analogue trigger of a gamepad
type TriggerSide int

// List of valid TriggerSide values
const (
	TriggerLeft TriggerSide = iota
	TriggerRight

	numTriggers
)

var triggerNames = [numTriggers]string{"LeftTrigger", "RightTrigger"}

func (s TriggerSide) String() string {
	if s < 0 || s >= numTriggers {
		return "Unknown"
	}
	return triggerNames[s]
}

// Valid returns true if the TriggerSide is a known trigger
func (s TriggerSide) Valid() bool {
	return s >= 0 && s < numTriggers
}
