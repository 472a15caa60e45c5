package demo

import (
	"errors"
	"fmt"
	"math"

	"github.com/jetsetilly/inputmaster/master"
	"github.com/jetsetilly/inputmaster/navigate"
)

// Swatches are the colours that can be chosen from the menu. The values are
// RGB
var Swatches = [...][3]uint8{
	{0xe0, 0xe0, 0xe0},
	{0xe0, 0x40, 0x40},
	{0x40, 0xe0, 0x40},
	{0x40, 0x80, 0xe0},
	{0xe0, 0xc0, 0x40},
}

// the base speed of the square in pixels per second
const speed = 200.0

// Size of the square in pixels
const Size = 16.0

// Scene is the state of the demo. A square is moved around the play area by
// the horizontal and vertical outputs. The cancel output opens a menu from
// which a colour for the square can be chosen
type Scene struct {
	m *master.Master

	horizontal *master.Combined
	vertical   *master.Combined
	sprint     *master.Combined
	accelerate *master.Combined
	submit     *master.Combined
	cancel     *master.Combined

	nav *navigate.Navigator

	// dimensions of the play area
	Width  float64
	Height float64

	// position of the top-left of the square
	X float64
	Y float64

	MenuOpen bool
	Selected int
	Colour   int

	// the navigation mode in the most recent frame
	Mode navigate.Mode
}

// ErrOutput is returned by NewScene if the master is missing an output
var ErrOutput = errors.New("demo: output missing")

// NewScene creates a scene for a master that has been loaded with the demo
// configuration
func NewScene(m *master.Master, width float64, height float64) (*Scene, error) {
	s := &Scene{
		m:      m,
		Width:  width,
		Height: height,
	}

	outputs := []struct {
		id string
		o  **master.Combined
	}{
		{id: Horizontal, o: &s.horizontal},
		{id: Vertical, o: &s.vertical},
		{id: Sprint, o: &s.sprint},
		{id: Accelerate, o: &s.accelerate},
		{id: Submit, o: &s.submit},
		{id: Cancel, o: &s.cancel},
	}
	for _, o := range outputs {
		var ok bool
		*o.o, ok = m.Output(o.id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrOutput, o.id)
		}
	}

	// sprinting adds to the acceleration axis. the clamped post hook means the
	// sprint cannot push the value beyond the range of the triggers
	s.accelerate.AddPostClamped(s.sprint.Value)

	s.nav = navigate.NewNavigator(nil, s.vertical, s.submit, s.cancel)
	s.Reset()

	return s, nil
}

// Reset the square to the centre of the play area and close the menu
func (s *Scene) Reset() {
	s.X = (s.Width - Size) / 2
	s.Y = (s.Height - Size) / 2
	s.MenuOpen = false
	s.Selected = s.Colour
	s.nav.Reset()
}

// Speed returns the current speed of the square in pixels per second
func (s *Scene) Speed() float64 {
	// acceleration is in the range -1 to 1. a fully pressed left trigger
	// halves the speed and a fully pressed right trigger doubles it
	return speed * math.Pow(2, s.accelerate.Value())
}

// Update the scene. It should be called after the master has been updated
func (s *Scene) Update(dt float64) {
	mouse := s.m.Mouse()
	nav := s.nav.Update(dt, mouse.X != 0 || mouse.Y != 0)
	s.Mode = nav.Mode

	if s.MenuOpen {
		if nav.Cancel {
			s.MenuOpen = false
			return
		}
		if nav.Submit {
			s.Colour = s.Selected
			s.MenuOpen = false
			return
		}

		// positive vertical is up, which is towards the start of the menu
		s.Selected -= nav.Y
		if s.Selected < 0 {
			s.Selected = len(Swatches) - 1
		} else if s.Selected >= len(Swatches) {
			s.Selected = 0
		}

		// the mouse wheel also moves through the menu
		if mouse.Wheel > 0 {
			s.Selected = max(s.Selected-1, 0)
		} else if mouse.Wheel < 0 {
			s.Selected = min(s.Selected+1, len(Swatches)-1)
		}
		return
	}

	if nav.Cancel {
		s.MenuOpen = true
		s.Selected = s.Colour
		return
	}

	v := s.Speed() * dt
	s.X += s.horizontal.Value() * v

	// screen coordinates increase downwards
	s.Y -= s.vertical.Value() * v

	s.X = math.Max(0, math.Min(s.Width-Size, s.X))
	s.Y = math.Max(0, math.Min(s.Height-Size, s.Y))
}

func (s *Scene) String() string {
	if s.MenuOpen {
		return fmt.Sprintf("menu: %d (%s)", s.Selected, s.Mode)
	}
	return fmt.Sprintf("square: %.0f,%.0f speed %.0f", s.X, s.Y, s.Speed())
}
