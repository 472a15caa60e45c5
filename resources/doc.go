// Package resources prepares paths for files that the program keeps between
// sessions. The demo uses it to remember the window geometry.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It creates directories as
// required but does not otherwise touch or create files.
//
// For builds with the "release" build tag the path is rooted in the user's
// configuration directory. On modern Linux systems the full path would be
// something like:
//
//	/home/user/.config/inputmaster/
//
// For non-"release" builds the path is rooted in the current working
// directory:
//
//	.inputmaster
package resources
