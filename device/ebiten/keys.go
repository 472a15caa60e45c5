package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/inputmaster/binding"
)

var keys = map[binding.Key]ebiten.Key{
	binding.KeyA:            ebiten.KeyA,
	binding.KeyB:            ebiten.KeyB,
	binding.KeyC:            ebiten.KeyC,
	binding.KeyD:            ebiten.KeyD,
	binding.KeyE:            ebiten.KeyE,
	binding.KeyF:            ebiten.KeyF,
	binding.KeyG:            ebiten.KeyG,
	binding.KeyH:            ebiten.KeyH,
	binding.KeyI:            ebiten.KeyI,
	binding.KeyJ:            ebiten.KeyJ,
	binding.KeyK:            ebiten.KeyK,
	binding.KeyL:            ebiten.KeyL,
	binding.KeyM:            ebiten.KeyM,
	binding.KeyN:            ebiten.KeyN,
	binding.KeyO:            ebiten.KeyO,
	binding.KeyP:            ebiten.KeyP,
	binding.KeyQ:            ebiten.KeyQ,
	binding.KeyR:            ebiten.KeyR,
	binding.KeyS:            ebiten.KeyS,
	binding.KeyT:            ebiten.KeyT,
	binding.KeyU:            ebiten.KeyU,
	binding.KeyV:            ebiten.KeyV,
	binding.KeyW:            ebiten.KeyW,
	binding.KeyX:            ebiten.KeyX,
	binding.KeyY:            ebiten.KeyY,
	binding.KeyZ:            ebiten.KeyZ,
	binding.Key0:            ebiten.KeyDigit0,
	binding.Key1:            ebiten.KeyDigit1,
	binding.Key2:            ebiten.KeyDigit2,
	binding.Key3:            ebiten.KeyDigit3,
	binding.Key4:            ebiten.KeyDigit4,
	binding.Key5:            ebiten.KeyDigit5,
	binding.Key6:            ebiten.KeyDigit6,
	binding.Key7:            ebiten.KeyDigit7,
	binding.Key8:            ebiten.KeyDigit8,
	binding.Key9:            ebiten.KeyDigit9,
	binding.KeyF1:           ebiten.KeyF1,
	binding.KeyF2:           ebiten.KeyF2,
	binding.KeyF3:           ebiten.KeyF3,
	binding.KeyF4:           ebiten.KeyF4,
	binding.KeyF5:           ebiten.KeyF5,
	binding.KeyF6:           ebiten.KeyF6,
	binding.KeyF7:           ebiten.KeyF7,
	binding.KeyF8:           ebiten.KeyF8,
	binding.KeyF9:           ebiten.KeyF9,
	binding.KeyF10:          ebiten.KeyF10,
	binding.KeyF11:          ebiten.KeyF11,
	binding.KeyF12:          ebiten.KeyF12,
	binding.KeySpace:        ebiten.KeySpace,
	binding.KeyEnter:        ebiten.KeyEnter,
	binding.KeyEscape:       ebiten.KeyEscape,
	binding.KeyTab:          ebiten.KeyTab,
	binding.KeyBackspace:    ebiten.KeyBackspace,
	binding.KeyInsert:       ebiten.KeyInsert,
	binding.KeyDelete:       ebiten.KeyDelete,
	binding.KeyHome:         ebiten.KeyHome,
	binding.KeyEnd:          ebiten.KeyEnd,
	binding.KeyPageUp:       ebiten.KeyPageUp,
	binding.KeyPageDown:     ebiten.KeyPageDown,
	binding.KeyUp:           ebiten.KeyArrowUp,
	binding.KeyDown:         ebiten.KeyArrowDown,
	binding.KeyLeft:         ebiten.KeyArrowLeft,
	binding.KeyRight:        ebiten.KeyArrowRight,
	binding.KeyLeftShift:    ebiten.KeyShiftLeft,
	binding.KeyRightShift:   ebiten.KeyShiftRight,
	binding.KeyLeftControl:  ebiten.KeyControlLeft,
	binding.KeyRightControl: ebiten.KeyControlRight,
	binding.KeyLeftAlt:      ebiten.KeyAltLeft,
	binding.KeyRightAlt:     ebiten.KeyAltRight,
	binding.KeyLeftMeta:     ebiten.KeyMetaLeft,
	binding.KeyRightMeta:    ebiten.KeyMetaRight,
	binding.KeyMinus:        ebiten.KeyMinus,
	binding.KeyEqual:        ebiten.KeyEqual,
	binding.KeyComma:        ebiten.KeyComma,
	binding.KeyPeriod:       ebiten.KeyPeriod,
	binding.KeySlash:        ebiten.KeySlash,
	binding.KeyBackslash:    ebiten.KeyBackslash,
	binding.KeySemicolon:    ebiten.KeySemicolon,
	binding.KeyQuote:        ebiten.KeyQuote,
	binding.KeyBackquote:    ebiten.KeyBackquote,
	binding.KeyLeftBracket:  ebiten.KeyBracketLeft,
	binding.KeyRightBracket: ebiten.KeyBracketRight,
	binding.KeyCapsLock:     ebiten.KeyCapsLock,
}

var mouseButtons = map[binding.MouseButton]ebiten.MouseButton{
	binding.MouseLeft:   ebiten.MouseButtonLeft,
	binding.MouseRight:  ebiten.MouseButtonRight,
	binding.MouseMiddle: ebiten.MouseButtonMiddle,
}

var buttons = map[binding.GamepadButton]ebiten.StandardGamepadButton{
	binding.ButtonA:             ebiten.StandardGamepadButtonRightBottom,
	binding.ButtonB:             ebiten.StandardGamepadButtonRightRight,
	binding.ButtonX:             ebiten.StandardGamepadButtonRightLeft,
	binding.ButtonY:             ebiten.StandardGamepadButtonRightTop,
	binding.ButtonBack:          ebiten.StandardGamepadButtonCenterLeft,
	binding.ButtonGuide:         ebiten.StandardGamepadButtonCenterCenter,
	binding.ButtonStart:         ebiten.StandardGamepadButtonCenterRight,
	binding.ButtonLeftStick:     ebiten.StandardGamepadButtonLeftStick,
	binding.ButtonRightStick:    ebiten.StandardGamepadButtonRightStick,
	binding.ButtonLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	binding.ButtonRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
	binding.ButtonDPadUp:        ebiten.StandardGamepadButtonLeftTop,
	binding.ButtonDPadDown:      ebiten.StandardGamepadButtonLeftBottom,
	binding.ButtonDPadLeft:      ebiten.StandardGamepadButtonLeftLeft,
	binding.ButtonDPadRight:     ebiten.StandardGamepadButtonLeftRight,
}

var axes = map[binding.GamepadAxis]ebiten.StandardGamepadAxis{
	binding.AxisLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	binding.AxisLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	binding.AxisRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	binding.AxisRightY: ebiten.StandardGamepadAxisRightStickVertical,
}

var triggers = map[binding.TriggerSide]ebiten.StandardGamepadButton{
	binding.TriggerLeft:  ebiten.StandardGamepadButtonFrontBottomLeft,
	binding.TriggerRight: ebiten.StandardGamepadButtonFrontBottomRight,
}
