// Package ui is the link between the window and the terminal monitor. The
// window owns the input registry. The monitor never touches the registry
// directly. Instead it sends commands to the window and receives reports from
// it.
package ui

// Report is a description of the registry at the end of a frame
type Report struct {
	Frame   int
	Context string
	Scene   string
	Mouse   string

	// one line for each control and output, in registration order. the
	// identifier of the control or output is the first field of the line
	Controls []string
	Outputs  []string

	// results of the most recent commands
	Feedback []string
}

// UI bundles the channels shared by the window and the monitor
type UI struct {
	// commands are sent by the monitor and consumed by the window
	Commands chan []string

	// reports are sent by the window and consumed by the monitor. the window
	// will not block if the monitor is not ready to receive a report
	Report chan Report
}

// NewUI is the preferred method of initialisation for the UI type
func NewUI() *UI {
	return &UI{
		Commands: make(chan []string, 8),
		Report:   make(chan Report, 1),
	}
}
