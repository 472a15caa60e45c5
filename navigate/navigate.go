// Package navigate turns combined outputs into menu navigation events. A
// direction that is pressed moves immediately. A direction that is held
// repeats at a fixed rate after an initial delay.
//
// The navigator also tracks whether the user is navigating with the mouse or
// with buttons. The first button movement after the mouse has been used only
// switches the mode and does not move.
package navigate

import (
	"github.com/jetsetilly/inputmaster/master"
)

// Mode of navigation
type Mode int

// List of valid Mode values
const (
	ModeButtons Mode = iota
	ModeMouse
)

func (m Mode) String() string {
	switch m {
	case ModeButtons:
		return "buttons"
	case ModeMouse:
		return "mouse"
	}
	return "unknown"
}

// Navigation is the result of one frame of navigation
type Navigation struct {
	X      int
	Y      int
	Submit bool
	Cancel bool
	Mode   Mode
}

// Moved returns true if the navigation includes movement
func (n Navigation) Moved() bool {
	return n.X != 0 || n.Y != 0
}

// Navigator produces Navigation values from combined outputs. Any of the
// outputs can be nil
type Navigator struct {
	Horizontal *master.Combined
	Vertical   *master.Combined
	Submit     *master.Combined
	Cancel     *master.Combined

	// number of repeated movements per second while a direction is held
	ActionsPerSecond float64

	// delay in seconds before the first repeat. if zero then the first
	// repeat happens after the same period as every other repeat
	RepeatDelay float64

	mode Mode
	time float64
	next float64
}

// NewNavigator is the preferred method of initialisation for the Navigator
// type
func NewNavigator(horizontal, vertical, submit, cancel *master.Combined) *Navigator {
	return &Navigator{
		Horizontal:       horizontal,
		Vertical:         vertical,
		Submit:           submit,
		Cancel:           cancel,
		ActionsPerSecond: 10,
		RepeatDelay:      0.4,
	}
}

// Mode returns the current navigation mode
func (n *Navigator) Mode() Mode {
	return n.mode
}

// Reset the navigator to button mode with no pending repeat
func (n *Navigator) Reset() {
	n.mode = ModeButtons
	n.time = 0
	n.next = 0
}

func fixed(o *master.Combined) int {
	if o == nil {
		return 0
	}
	return o.FixedValue()
}

func pressed(o *master.Combined) bool {
	return o != nil && o.AnyDown()
}

// Update the navigator. It should be called once per frame after the master
// has been updated. The dt argument is the duration of the frame in seconds
// and mouseMoved says whether the mouse pointer moved during the frame
func (n *Navigator) Update(dt float64, mouseMoved bool) Navigation {
	n.time += dt

	var nav Navigation

	if mouseMoved {
		n.mode = ModeMouse
	}

	if n.Submit != nil && n.Submit.AnyDownPositive() {
		nav.Submit = true
	}
	if n.Cancel != nil && n.Cancel.AnyDownPositive() {
		nav.Cancel = true
	}

	x := fixed(n.Horizontal)
	y := fixed(n.Vertical)

	if x != 0 || y != 0 {
		fresh := pressed(n.Horizontal) || pressed(n.Vertical)
		if fresh || n.time >= n.next {
			period := 1.0
			if n.ActionsPerSecond > 0 {
				period = 1.0 / n.ActionsPerSecond
			}

			if n.mode != ModeButtons {
				n.mode = ModeButtons
			} else {
				nav.X = x
				nav.Y = y
			}

			if fresh && n.RepeatDelay > 0 {
				n.next = n.time + n.RepeatDelay
			} else {
				n.next = n.time + period
			}
		}
	}

	nav.Mode = n.mode

	return nav
}
