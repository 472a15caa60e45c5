package master

import "github.com/jetsetilly/inputmaster/binding"

// Mouse is the movement of the mouse pointer in the most recent frame
type Mouse struct {
	X     float64
	Y     float64
	Wheel float64
}

type mouse struct {
	blocked bool
	delta   Mouse
	raw     Mouse

	// rate per second at which the smoothed movement follows the raw
	// movement. zero means no smoothing
	response float64

	// the position of the cursor in the previous frame. the first frame with
	// a known position produces no movement
	last  [2]float64
	valid bool
}

func (m *mouse) reset() {
	m.delta = Mouse{}
	m.raw = Mouse{}
	m.valid = false
}

// updateMouse samples the device if it implements the binding.Pointer
// interface. Movement is still tracked while the mouse is blocked so that
// there is no jump when it is unblocked
func (m *Master) updateMouse(dt float64) {
	p, ok := m.dev.(binding.Pointer)
	if !ok {
		m.mouse.delta = Mouse{}
		m.mouse.raw = Mouse{}
		return
	}

	x, y := p.CursorPosition()
	_, w := p.Wheel()

	var d Mouse
	if m.mouse.valid {
		d.X = x - m.mouse.last[0]
		d.Y = y - m.mouse.last[1]
	}
	d.Wheel = w

	m.mouse.last = [2]float64{x, y}
	m.mouse.valid = true
	m.mouse.raw = d

	if m.mouse.blocked {
		m.mouse.delta = Mouse{}
		return
	}

	if m.mouse.response <= 0 {
		m.mouse.delta = d
		return
	}

	f := min(1, m.mouse.response*dt)
	m.mouse.delta.X += (d.X - m.mouse.delta.X) * f
	m.mouse.delta.Y += (d.Y - m.mouse.delta.Y) * f
	m.mouse.delta.Wheel += (d.Wheel - m.mouse.delta.Wheel) * f
}

// Mouse returns the smoothed movement of the mouse in the most recent frame.
// A blocked mouse reports no movement
func (m *Master) Mouse() Mouse {
	return m.mouse.delta
}

// MouseRaw returns the unsmoothed movement of the mouse in the most recent
// frame. It is not affected by SetMouseBlocked()
func (m *Master) MouseRaw() Mouse {
	return m.mouse.raw
}

// SetMouseSmoothing sets the rate per second at which Mouse() follows
// MouseRaw(). A value of zero or less turns smoothing off, which is the
// default
func (m *Master) SetMouseSmoothing(response float64) {
	m.mouse.response = response
}

// SetMouseBlocked blocks or unblocks mouse movement. A blocked mouse reports
// no movement
func (m *Master) SetMouseBlocked(blocked bool) {
	m.mouse.blocked = blocked
	if blocked {
		m.mouse.delta = Mouse{}
	}
}

// MouseBlocked returns true if mouse movement is blocked
func (m *Master) MouseBlocked() bool {
	return m.mouse.blocked
}
