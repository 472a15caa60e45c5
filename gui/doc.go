// Package gui is the demonstration window. The window owns the input device
// and the control registry. Each frame it samples the device, updates the
// registry, applies any commands sent by the terminal monitor and then draws
// the demo scene.
//
// A small set of meta actions are handled outside of the registry with the
// ebitengine-input package. These are always available, even when every
// control has been blocked:
//
//	Escape           quit
//	F1 / Back        block or unblock every control
//	F2 / Start       reset every control
package gui
