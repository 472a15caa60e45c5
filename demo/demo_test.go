package demo_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/demo"
	"github.com/jetsetilly/inputmaster/device/virtual"
	"github.com/jetsetilly/inputmaster/master"
	"github.com/jetsetilly/inputmaster/test"
)

const dt = 0.1

type harness struct {
	d     *virtual.Device
	m     *master.Master
	scene *demo.Scene
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{d: virtual.NewDevice()}
	h.m = master.New(h.d, master.Context{})
	test.DemandSuccess(t, h.m.Load(demo.Configuration()))

	var err error
	h.scene, err = demo.NewScene(h.m, 320, 240)
	test.DemandSuccess(t, err)
	return h
}

func (h *harness) frame(t *testing.T) {
	t.Helper()
	h.d.Frame()
	test.DemandSuccess(t, h.m.Update(dt))
	h.scene.Update(dt)
}

func TestConfiguration(t *testing.T) {
	h := newHarness(t)
	h.frame(t)
	test.ExpectEquality(t, h.m.Phase(), master.PhaseRunning)

	for _, id := range []string{demo.Horizontal, demo.Vertical, demo.Sprint, demo.Accelerate,
		demo.Submit, demo.Cancel, demo.Inspect, demo.Save} {
		_, ok := h.m.Output(id)
		test.ExpectEquality(t, ok, true, id)
	}
}

func TestMissingOutput(t *testing.T) {
	m := master.New(virtual.NewDevice(), master.Context{})
	_, err := demo.NewScene(m, 320, 240)
	test.ExpectEquality(t, errors.Is(err, demo.ErrOutput), true)
}

func TestMove(t *testing.T) {
	h := newHarness(t)
	x, y := h.scene.X, h.scene.Y

	h.d.Press(binding.KeyD)
	for range 5 {
		h.frame(t)
	}
	test.ExpectEquality(t, h.scene.X > x, true)
	test.ExpectApproximate(t, h.scene.Y, y, 1e-9)

	// the square never leaves the play area
	for range 100 {
		h.frame(t)
	}
	test.ExpectApproximate(t, h.scene.X, 320-demo.Size, 1e-9)

	h.d.Release(binding.KeyD)
	h.d.Press(binding.KeyW)
	for range 5 {
		h.frame(t)
	}
	test.ExpectEquality(t, h.scene.Y < y, true)
}

func TestSprint(t *testing.T) {
	h := newHarness(t)
	h.frame(t)
	test.ExpectApproximate(t, h.scene.Speed(), 200, 1e-9)

	h.d.Press(binding.KeyLeftShift)
	h.frame(t)
	test.ExpectApproximate(t, h.scene.Speed(), 400, 1e-9)

	// sprint and a fully pressed trigger are clamped together
	h.d.SetTrigger(0, binding.TriggerRight, 1)
	h.d.Connect(0)
	h.frame(t)
	test.ExpectApproximate(t, h.scene.Speed(), 400, 1e-9)

	h.d.Release(binding.KeyLeftShift)
	h.d.SetTrigger(0, binding.TriggerRight, 0)
	h.d.SetTrigger(0, binding.TriggerLeft, 1)
	h.frame(t)
	test.ExpectApproximate(t, h.scene.Speed(), 100, 1e-9)
}

func TestMenu(t *testing.T) {
	h := newHarness(t)
	h.frame(t)

	h.d.Press(binding.KeyBackspace)
	h.frame(t)
	test.ExpectEquality(t, h.scene.MenuOpen, true)

	// holding cancel does not close the menu
	h.frame(t)
	test.ExpectEquality(t, h.scene.MenuOpen, true)
	h.d.Release(binding.KeyBackspace)
	h.frame(t)

	// down moves to the next swatch
	h.d.Press(binding.KeyS)
	h.frame(t)
	test.ExpectEquality(t, h.scene.Selected, 1)
	h.d.Release(binding.KeyS)

	h.d.Press(binding.KeyEnter)
	h.frame(t)
	test.ExpectEquality(t, h.scene.MenuOpen, false)
	test.ExpectEquality(t, h.scene.Colour, 1)
}

func TestMenuWrap(t *testing.T) {
	h := newHarness(t)
	h.frame(t)

	h.d.Press(binding.KeyBackspace)
	h.frame(t)
	h.d.Release(binding.KeyBackspace)
	h.frame(t)

	h.d.Press(binding.KeyW)
	h.frame(t)
	test.ExpectEquality(t, h.scene.Selected, len(demo.Swatches)-1)

	// the square does not move while the menu is open
	x, y := h.scene.X, h.scene.Y
	h.frame(t)
	test.ExpectEquality(t, h.scene.X, x)
	test.ExpectEquality(t, h.scene.Y, y)
}
