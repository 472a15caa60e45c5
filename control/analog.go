package control

import (
	"github.com/jetsetilly/inputmaster/binding"
)

func (c *Control) updateAnalog(dev binding.Device, controller int, s *Snapshot) {
	var v float64

	if c.gateOpen(dev, controller) {
		v = binding.Resolve(dev, c.bindingFor(c.cfg.Positive, controller)).Value
		if !c.cfg.Negative.IsNone() {
			v -= binding.Resolve(dev, c.bindingFor(c.cfg.Negative, controller)).Value
		}
		if c.cfg.Invert {
			v = -v
		}
	}

	prev := polarity(s.Value)

	s.RealValue = v
	s.shape(c.cfg.DeadZone)

	curr := polarity(s.Value)

	s.Held = curr
	s.Down = Neither
	s.Up = Neither
	if curr != prev {
		s.Down = curr
		s.Up = prev
	}
}
