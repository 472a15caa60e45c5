//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch writes a message explaining that the statsview is unavailable
func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available in this build")
}

// Available returns true if a statsview is available to launch
func Available() bool {
	return false
}
