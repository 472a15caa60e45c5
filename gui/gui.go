package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/inputmaster/binding"
	"github.com/jetsetilly/inputmaster/demo"
	"github.com/jetsetilly/inputmaster/device/virtual"
	"github.com/jetsetilly/inputmaster/logger"
	"github.com/jetsetilly/inputmaster/master"
	"github.com/jetsetilly/inputmaster/ui"
	"github.com/jetsetilly/inputmaster/version"
	input "github.com/quasilyte/ebitengine-input"
)

// List of backend names accepted by Options
const (
	BackendEbiten = "ebiten"
	BackendSDL    = "sdl"
)

// ErrBackend is returned by Launch if the backend is not recognised
var ErrBackend = errors.New("unknown input backend")

// Options for the window
type Options struct {
	// the input backend. one of the Backend values
	Backend string

	// ticks per second. the registry is updated once per tick
	TPS int

	Context master.Context
}

// vibrator is implemented by backends that can vibrate gamepads
type vibrator interface {
	Vibrate(pad int, strength float64, duration time.Duration)
	StopVibration()
}

// the hardware device and the functions that look after it
type backend struct {
	binding.Device
	frame   func()
	destroy func()
}

// dimensions of the play area. the window is scaled to fit
const (
	screenWidth  = 320
	screenHeight = 240
)

// meta actions
const (
	actionQuit input.Action = iota
	actionBlock
	actionReset
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	u      *ui.UI
	endGui chan bool
	geom   windowGeometry

	backend backend
	overlay *virtual.Overlay
	master  *master.Master
	scene   *demo.Scene

	inputSystem  input.System
	inputHandler *input.Handler

	// duration of one tick in seconds
	dt    float64
	frame int

	blocked  bool
	feedback []string

	// focus state of the window in the previous frame
	focused bool

	// colour of the scene in the previous frame
	colour int
}

// stopVibration stops any gamepad vibration if the backend supports it
func (g *guiEbiten) stopVibration() {
	if v, ok := g.backend.Device.(vibrator); ok {
		v.StopVibration()
	}
}

// vibrate the first gamepad if the backend supports it
func (g *guiEbiten) vibrate(strength float64, duration time.Duration) {
	if v, ok := g.backend.Device.(vibrator); ok {
		v.Vibrate(0, strength, duration)
	}
}

func (g *guiEbiten) meta() bool {
	g.inputSystem.Update()

	if g.inputHandler.ActionIsJustPressed(actionQuit) {
		return true
	}
	if g.inputHandler.ActionIsJustPressed(actionBlock) {
		g.setBlocked(!g.blocked)
	}
	if g.inputHandler.ActionIsJustPressed(actionReset) {
		g.reset()
	}
	return false
}

func (g *guiEbiten) setBlocked(blocked bool) {
	g.blocked = blocked
	g.master.SetBlockedAll(blocked)
	g.master.SetMouseBlocked(blocked)
	if blocked {
		g.output("all controls blocked")
	} else {
		g.output("all controls unblocked")
	}
}

func (g *guiEbiten) reset() {
	g.blocked = false
	g.overlay.Virtual.ReleaseAll()
	g.master.ResetAll()
	g.scene.Reset()
	g.output("all controls reset")
}

// output adds a line of feedback to the next report
func (g *guiEbiten) output(s string) {
	logger.Log(logger.Allow, "gui", s)
	g.feedback = append(g.feedback, s)
}

func (g *guiEbiten) Update() error {
	select {
	case <-g.endGui:
		g.stopVibration()
		return ebiten.Termination
	default:
	}

	if g.meta() {
		g.stopVibration()
		return ebiten.Termination
	}

	focused := ebiten.IsFocused()
	if g.focused && !focused {
		g.stopVibration()
	}
	g.focused = focused

	// commands are applied before the devices are sampled so that virtual
	// input takes effect in this frame
	g.commands()

	g.backend.frame()
	g.overlay.Frame()

	err := g.master.Update(g.dt)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	g.scene.Update(g.dt)
	g.frame++

	if g.scene.Colour != g.colour {
		g.colour = g.scene.Colour
		g.vibrate(0.5, 150*time.Millisecond)
	}

	g.report()

	return nil
}

func (g *guiEbiten) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch the window. The function returns when the window is closed or when
// endGui receives a value
func Launch(endGui chan bool, u *ui.UI, opts Options) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowPosition(10, 10)

	if opts.Backend == "" {
		opts.Backend = BackendEbiten
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	ebiten.SetTPS(opts.TPS)

	be, err := newBackend(opts.Backend)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	if be.destroy != nil {
		defer be.destroy()
	}

	g := &guiEbiten{
		u:       u,
		endGui:  endGui,
		backend: be,
		overlay: virtual.NewOverlay(be.Device),
		dt:      1.0 / float64(opts.TPS),
	}

	g.master = master.New(g.overlay, opts.Context)
	err = g.master.Load(demo.Configuration())
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	g.scene, err = demo.NewScene(g.master, screenWidth, screenHeight)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	g.inputHandler = g.inputSystem.NewHandler(0, input.Keymap{
		actionQuit:  {input.KeyEscape},
		actionBlock: {input.KeyF1, input.KeyGamepadBack},
		actionReset: {input.KeyF2, input.KeyGamepadStart},
	})

	g.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(g.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	logger.Logf(logger.Allow, "gui", "%s backend at %d ticks per second", opts.Backend, opts.TPS)

	return ebiten.RunGame(g)
}

