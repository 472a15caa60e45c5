// Package demo contains the control configuration used by the demonstration
// window. It is also a worked example of how the control, master and navigate
// packages fit together.
package demo

import (
	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/control"
	"github.com/jetsetilly/inputmaster/master"
)

// Identifiers of the combined outputs in the demo configuration
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
	Sprint     = "sprint"
	Accelerate = "accelerate"
	Submit     = "submit"
	Cancel     = "cancel"
	Inspect    = "inspect"
	Save       = "save"
)

// deadzone for the analogue sticks
const deadZone = 0.2

// Configuration returns the controls and outputs of the demo
func Configuration() master.Configuration {
	horizKeys := control.DigitalConfig("horizontal_keys",
		binding.KeyboardKey(binding.KeyD), binding.KeyboardKey(binding.KeyA))
	horizKeys.Sensitivity = 4
	horizKeys.Gravity = 6
	horizKeys.Snap = true

	vertKeys := control.DigitalConfig("vertical_keys",
		binding.KeyboardKey(binding.KeyW), binding.KeyboardKey(binding.KeyS))
	vertKeys.Sensitivity = 4
	vertKeys.Gravity = 6
	vertKeys.Snap = true

	horizDPad := control.DigitalConfig("horizontal_dpad",
		binding.Button(0, binding.ButtonDPadRight), binding.Button(0, binding.ButtonDPadLeft))
	horizDPad.Sensitivity = 4
	horizDPad.Gravity = 6

	vertDPad := control.DigitalConfig("vertical_dpad",
		binding.Button(0, binding.ButtonDPadUp), binding.Button(0, binding.ButtonDPadDown))
	vertDPad.Sensitivity = 4
	vertDPad.Gravity = 6

	horizStick := control.AnalogConfig("horizontal_stick", binding.Axis(0, binding.AxisLeftX), deadZone)
	vertStick := control.AnalogConfig("vertical_stick", binding.Axis(0, binding.AxisLeftY), deadZone)

	// the triggers form a single axis. right trigger is positive
	accel := control.AnalogConfig("accelerate_triggers", binding.Trigger(0, binding.TriggerRight), 0.05)
	accel.Negative = binding.Trigger(0, binding.TriggerLeft)

	sprint := control.ActionConfig("sprint_button",
		binding.KeyboardKey(binding.KeyLeftShift), binding.Button(0, binding.ButtonRightShoulder))

	submit := control.ActionConfig("submit_button",
		binding.KeyboardKey(binding.KeySpace), binding.KeyboardKey(binding.KeyEnter),
		binding.Mouse(binding.MouseLeft), binding.Button(0, binding.ButtonA))

	cancel := control.ActionConfig("cancel_button",
		binding.KeyboardKey(binding.KeyBackspace), binding.Mouse(binding.MouseRight),
		binding.Button(0, binding.ButtonB))

	// only available when running as an editor
	inspect := control.ActionConfig("inspect_button", binding.KeyboardKey(binding.KeyI))
	inspect.Scope = control.ScopeEditorOnly

	save := control.ActionConfig("save_button",
		binding.KeyboardKey(binding.KeyS).WithModifiers(binding.ModControl))
	save.DebugOnly = true

	return master.Configuration{
		Controls: []control.Config{
			horizKeys, vertKeys,
			horizDPad, vertDPad,
			horizStick, vertStick,
			accel, sprint,
			submit, cancel,
			inspect, save,
		},
		Outputs: []master.OutputConfig{
			{Identifier: Horizontal, Members: []string{"horizontal_keys", "horizontal_dpad", "horizontal_stick"}},
			{Identifier: Vertical, Members: []string{"vertical_keys", "vertical_dpad", "vertical_stick"}},
			{Identifier: Sprint, Members: []string{"sprint_button"}},
			{Identifier: Accelerate, Members: []string{"accelerate_triggers"}},
			{Identifier: Submit, Members: []string{"submit_button"}},
			{Identifier: Cancel, Members: []string{"cancel_button"}},
			{Identifier: Inspect, Members: []string{"inspect_button"}},
			{Identifier: Save, Members: []string{"save_button"}},
		},
	}
}
