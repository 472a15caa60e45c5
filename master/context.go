package master

// Context is the execution context of the registry. It decides which controls
// are updated and it is the logging permission for per-frame diagnostics
type Context struct {
	// Editor is true if the program is running inside an editor or other
	// development tool
	Editor bool

	// Debug is true for debugging builds. Controls marked as debug only are
	// not updated if Debug is false
	Debug bool
}

// DefaultContext returns the context suitable for how the program was built.
// Debug is true unless the program was built with the "release" build tag
func DefaultContext() Context {
	return Context{
		Debug: debugBuild,
	}
}

// AllowLogging implements the logger.Permission interface
func (ctx Context) AllowLogging() bool {
	return ctx.Debug
}

func (ctx Context) String() string {
	var s string
	if ctx.Editor {
		s = "editor"
	} else {
		s = "game"
	}
	if ctx.Debug {
		s += " (debug)"
	}
	return s
}
