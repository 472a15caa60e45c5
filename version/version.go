// Package version reports the name, version and vcs revision of the program.
// The version number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/inputmaster/version.number=v0.1.0"
//
// Without a version number the revision from the embedded build information
// is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "InputMaster"

// set by the linker
var number string

var revision string

// Version returns the version number and the vcs revision. The version is
// "unreleased" if there is vcs information but no version number and "local"
// if there is neither
func Version() (string, string) {
	if number != "" {
		return number, revision
	}
	if revision == "" {
		return "local", "no revision information"
	}
	return "unreleased", revision
}

// Title returns a string that can be used in a window title
func Title() string {
	ver, rev := Version()
	if number != "" || revision == "" {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision != "" && modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}
}
