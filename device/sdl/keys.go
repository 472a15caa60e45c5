package sdl

import (
	"github.com/jetsetilly/inputmaster/binding"
	"github.com/veandco/go-sdl2/sdl"
)

var scancodes = map[binding.Key]sdl.Scancode{
	binding.KeyA:            sdl.Scancode(sdl.SCANCODE_A),
	binding.KeyB:            sdl.Scancode(sdl.SCANCODE_B),
	binding.KeyC:            sdl.Scancode(sdl.SCANCODE_C),
	binding.KeyD:            sdl.Scancode(sdl.SCANCODE_D),
	binding.KeyE:            sdl.Scancode(sdl.SCANCODE_E),
	binding.KeyF:            sdl.Scancode(sdl.SCANCODE_F),
	binding.KeyG:            sdl.Scancode(sdl.SCANCODE_G),
	binding.KeyH:            sdl.Scancode(sdl.SCANCODE_H),
	binding.KeyI:            sdl.Scancode(sdl.SCANCODE_I),
	binding.KeyJ:            sdl.Scancode(sdl.SCANCODE_J),
	binding.KeyK:            sdl.Scancode(sdl.SCANCODE_K),
	binding.KeyL:            sdl.Scancode(sdl.SCANCODE_L),
	binding.KeyM:            sdl.Scancode(sdl.SCANCODE_M),
	binding.KeyN:            sdl.Scancode(sdl.SCANCODE_N),
	binding.KeyO:            sdl.Scancode(sdl.SCANCODE_O),
	binding.KeyP:            sdl.Scancode(sdl.SCANCODE_P),
	binding.KeyQ:            sdl.Scancode(sdl.SCANCODE_Q),
	binding.KeyR:            sdl.Scancode(sdl.SCANCODE_R),
	binding.KeyS:            sdl.Scancode(sdl.SCANCODE_S),
	binding.KeyT:            sdl.Scancode(sdl.SCANCODE_T),
	binding.KeyU:            sdl.Scancode(sdl.SCANCODE_U),
	binding.KeyV:            sdl.Scancode(sdl.SCANCODE_V),
	binding.KeyW:            sdl.Scancode(sdl.SCANCODE_W),
	binding.KeyX:            sdl.Scancode(sdl.SCANCODE_X),
	binding.KeyY:            sdl.Scancode(sdl.SCANCODE_Y),
	binding.KeyZ:            sdl.Scancode(sdl.SCANCODE_Z),
	binding.Key0:            sdl.Scancode(sdl.SCANCODE_0),
	binding.Key1:            sdl.Scancode(sdl.SCANCODE_1),
	binding.Key2:            sdl.Scancode(sdl.SCANCODE_2),
	binding.Key3:            sdl.Scancode(sdl.SCANCODE_3),
	binding.Key4:            sdl.Scancode(sdl.SCANCODE_4),
	binding.Key5:            sdl.Scancode(sdl.SCANCODE_5),
	binding.Key6:            sdl.Scancode(sdl.SCANCODE_6),
	binding.Key7:            sdl.Scancode(sdl.SCANCODE_7),
	binding.Key8:            sdl.Scancode(sdl.SCANCODE_8),
	binding.Key9:            sdl.Scancode(sdl.SCANCODE_9),
	binding.KeyF1:           sdl.Scancode(sdl.SCANCODE_F1),
	binding.KeyF2:           sdl.Scancode(sdl.SCANCODE_F2),
	binding.KeyF3:           sdl.Scancode(sdl.SCANCODE_F3),
	binding.KeyF4:           sdl.Scancode(sdl.SCANCODE_F4),
	binding.KeyF5:           sdl.Scancode(sdl.SCANCODE_F5),
	binding.KeyF6:           sdl.Scancode(sdl.SCANCODE_F6),
	binding.KeyF7:           sdl.Scancode(sdl.SCANCODE_F7),
	binding.KeyF8:           sdl.Scancode(sdl.SCANCODE_F8),
	binding.KeyF9:           sdl.Scancode(sdl.SCANCODE_F9),
	binding.KeyF10:          sdl.Scancode(sdl.SCANCODE_F10),
	binding.KeyF11:          sdl.Scancode(sdl.SCANCODE_F11),
	binding.KeyF12:          sdl.Scancode(sdl.SCANCODE_F12),
	binding.KeySpace:        sdl.Scancode(sdl.SCANCODE_SPACE),
	binding.KeyEnter:        sdl.Scancode(sdl.SCANCODE_RETURN),
	binding.KeyEscape:       sdl.Scancode(sdl.SCANCODE_ESCAPE),
	binding.KeyTab:          sdl.Scancode(sdl.SCANCODE_TAB),
	binding.KeyBackspace:    sdl.Scancode(sdl.SCANCODE_BACKSPACE),
	binding.KeyInsert:       sdl.Scancode(sdl.SCANCODE_INSERT),
	binding.KeyDelete:       sdl.Scancode(sdl.SCANCODE_DELETE),
	binding.KeyHome:         sdl.Scancode(sdl.SCANCODE_HOME),
	binding.KeyEnd:          sdl.Scancode(sdl.SCANCODE_END),
	binding.KeyPageUp:       sdl.Scancode(sdl.SCANCODE_PAGEUP),
	binding.KeyPageDown:     sdl.Scancode(sdl.SCANCODE_PAGEDOWN),
	binding.KeyUp:           sdl.Scancode(sdl.SCANCODE_UP),
	binding.KeyDown:         sdl.Scancode(sdl.SCANCODE_DOWN),
	binding.KeyLeft:         sdl.Scancode(sdl.SCANCODE_LEFT),
	binding.KeyRight:        sdl.Scancode(sdl.SCANCODE_RIGHT),
	binding.KeyLeftShift:    sdl.Scancode(sdl.SCANCODE_LSHIFT),
	binding.KeyRightShift:   sdl.Scancode(sdl.SCANCODE_RSHIFT),
	binding.KeyLeftControl:  sdl.Scancode(sdl.SCANCODE_LCTRL),
	binding.KeyRightControl: sdl.Scancode(sdl.SCANCODE_RCTRL),
	binding.KeyLeftAlt:      sdl.Scancode(sdl.SCANCODE_LALT),
	binding.KeyRightAlt:     sdl.Scancode(sdl.SCANCODE_RALT),
	binding.KeyLeftMeta:     sdl.Scancode(sdl.SCANCODE_LGUI),
	binding.KeyRightMeta:    sdl.Scancode(sdl.SCANCODE_RGUI),
	binding.KeyMinus:        sdl.Scancode(sdl.SCANCODE_MINUS),
	binding.KeyEqual:        sdl.Scancode(sdl.SCANCODE_EQUALS),
	binding.KeyComma:        sdl.Scancode(sdl.SCANCODE_COMMA),
	binding.KeyPeriod:       sdl.Scancode(sdl.SCANCODE_PERIOD),
	binding.KeySlash:        sdl.Scancode(sdl.SCANCODE_SLASH),
	binding.KeyBackslash:    sdl.Scancode(sdl.SCANCODE_BACKSLASH),
	binding.KeySemicolon:    sdl.Scancode(sdl.SCANCODE_SEMICOLON),
	binding.KeyQuote:        sdl.Scancode(sdl.SCANCODE_APOSTROPHE),
	binding.KeyBackquote:    sdl.Scancode(sdl.SCANCODE_GRAVE),
	binding.KeyLeftBracket:  sdl.Scancode(sdl.SCANCODE_LEFTBRACKET),
	binding.KeyRightBracket: sdl.Scancode(sdl.SCANCODE_RIGHTBRACKET),
	binding.KeyCapsLock:     sdl.Scancode(sdl.SCANCODE_CAPSLOCK),
}

var mouseButtons = map[binding.MouseButton]uint32{
	binding.MouseLeft:   sdl.Button(uint32(sdl.BUTTON_LEFT)),
	binding.MouseRight:  sdl.Button(uint32(sdl.BUTTON_RIGHT)),
	binding.MouseMiddle: sdl.Button(uint32(sdl.BUTTON_MIDDLE)),
}

var buttons = map[binding.GamepadButton]sdl.GameControllerButton{
	binding.ButtonA:             sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_A),
	binding.ButtonB:             sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_B),
	binding.ButtonX:             sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_X),
	binding.ButtonY:             sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_Y),
	binding.ButtonBack:          sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_BACK),
	binding.ButtonGuide:         sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_GUIDE),
	binding.ButtonStart:         sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_START),
	binding.ButtonLeftStick:     sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_LEFTSTICK),
	binding.ButtonRightStick:    sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_RIGHTSTICK),
	binding.ButtonLeftShoulder:  sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_LEFTSHOULDER),
	binding.ButtonRightShoulder: sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER),
	binding.ButtonDPadUp:        sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_UP),
	binding.ButtonDPadDown:      sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_DOWN),
	binding.ButtonDPadLeft:      sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_LEFT),
	binding.ButtonDPadRight:     sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_RIGHT),
}

var axes = map[binding.GamepadAxis]sdl.GameControllerAxis{
	binding.AxisLeftX:  sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTX),
	binding.AxisLeftY:  sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTY),
	binding.AxisRightX: sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_RIGHTX),
	binding.AxisRightY: sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_RIGHTY),
}

var triggers = map[binding.TriggerSide]sdl.GameControllerAxis{
	binding.TriggerLeft:  sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_TRIGGERLEFT),
	binding.TriggerRight: sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT),
}
