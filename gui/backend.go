//go:build !wasm

package gui

import (
	"fmt"

	"github.com/jetsetilly/inputmaster/device/ebiten"
	"github.com/jetsetilly/inputmaster/device/sdl"
)

func newBackend(name string) (backend, error) {
	switch name {
	case "", BackendEbiten:
		d := ebiten.NewDevice()
		return backend{Device: d, frame: d.Frame}, nil
	case BackendSDL:
		// SDL does not own the window so keyboard and mouse input still come
		// from ebiten
		kb := ebiten.NewDevice()
		d, err := sdl.NewDevice(kb)
		if err != nil {
			return backend{}, err
		}
		return backend{
			Device: d,
			frame: func() {
				kb.Frame()
				d.Frame()
			},
			destroy: d.Destroy,
		}, nil
	}
	return backend{}, fmt.Errorf("%w: %s", ErrBackend, name)
}
