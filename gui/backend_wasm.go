//go:build wasm

package gui

import (
	"fmt"

	"github.com/jetsetilly/inputmaster/device/ebiten"
)

func newBackend(name string) (backend, error) {
	switch name {
	case "", BackendEbiten:
		d := ebiten.NewDevice()
		return backend{Device: d, frame: d.Frame}, nil
	}
	return backend{}, fmt.Errorf("%w: %s", ErrBackend, name)
}
