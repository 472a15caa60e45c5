package control

import (
	"github.com/jetsetilly/inputmaster/binding"
)

// edges returns the down, held and up flags for one polarity given the
// sample for this frame and whether the polarity was held in the previous
// frame. down and up can never both be true
func edges(s binding.Sample, prevHeld bool) (down bool, held bool, up bool) {
	held = s.Held || s.Down
	down = held && (s.Down || !prevHeld)
	up = !held && (s.Up || prevHeld)
	return down, held, up
}

func (c *Control) updateDigital(dt float64, dev binding.Device, controller int, s *Snapshot) {
	var pos, neg binding.Sample

	if c.gateOpen(dev, controller) {
		pos = binding.Resolve(dev, c.bindingFor(c.cfg.Positive, controller))
		neg = binding.Resolve(dev, c.bindingFor(c.cfg.Negative, controller))
		if c.cfg.Invert {
			pos, neg = neg, pos
		}
	}

	var down, held, up State

	d, h, u := edges(pos, s.Held.HasPositive())
	if d {
		down |= Positive
	}
	if h {
		held |= Positive
	}
	if u {
		up |= Positive
	}

	d, h, u = edges(neg, s.Held.HasNegative())
	if d {
		down |= Negative
	}
	if h {
		held |= Negative
	}
	if u {
		up |= Negative
	}

	s.Down = down
	s.Held = held
	s.Up = up

	switch held {
	case Positive:
		if c.cfg.Snap && s.RealValue < 0 {
			s.RealValue = 0
		} else {
			s.RealValue += c.cfg.Sensitivity * dt
		}
	case Negative:
		if c.cfg.Snap && s.RealValue > 0 {
			s.RealValue = 0
		} else {
			s.RealValue -= c.cfg.Sensitivity * dt
		}
	case Both:
		// opposing inputs cancel each other out
	case Neither:
		g := c.cfg.Gravity * dt
		if s.RealValue > 0 {
			s.RealValue = max(0, s.RealValue-g)
		} else if s.RealValue < 0 {
			s.RealValue = min(0, s.RealValue+g)
		}
	}

	s.shape(c.cfg.DeadZone)
}
