// The wasm command runs the demonstration window in a browser. There is no
// terminal monitor so the window is launched on its own and reports are
// discarded.
package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/inputmaster/gui"
	"github.com/jetsetilly/inputmaster/logger"
	"github.com/jetsetilly/inputmaster/master"
	"github.com/jetsetilly/inputmaster/ui"
)

func main() {
	// logger messages will be viewable in javascript log for WASM build
	logger.SetEcho(os.Stderr, false)

	u := ui.NewUI()

	err := gui.Launch(nil, u, gui.Options{
		Backend: gui.BackendEbiten,
		Context: master.DefaultContext(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "*** %s\n", err)
	}
}
