package control

import (
	"github.com/jetsetilly/inputmaster/binding"
)

func (c *Control) updateAction(dev binding.Device, controller int, s *Snapshot) {
	var active bool

	if c.gateOpen(dev, controller) {
		for _, b := range c.cfg.Bindings {
			if binding.Resolve(dev, c.bindingFor(b, controller)).Active() {
				active = true
				break
			}
		}
	}

	switch s.Action {
	case ActionNone, ActionUp:
		if active {
			s.Action = ActionDown
		} else {
			s.Action = ActionNone
		}
	case ActionDown, ActionHeld:
		if active {
			s.Action = ActionHeld
		} else {
			s.Action = ActionUp
		}
	}

	s.Down = Neither
	s.Held = Neither
	s.Up = Neither

	switch s.Action {
	case ActionDown:
		s.Down = Positive
		s.Held = Positive
	case ActionHeld:
		s.Held = Positive
	case ActionUp:
		s.Up = Positive
	}

	if active {
		s.RealValue = 1
	} else {
		s.RealValue = 0
	}
	s.shape(0)
}
