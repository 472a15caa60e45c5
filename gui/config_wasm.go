//go:build wasm

package gui

func onWindowOpen() (windowGeometry, error) {
	return windowGeometry{}, nil
}

func onWindowClose(g windowGeometry) error {
	return nil
}
