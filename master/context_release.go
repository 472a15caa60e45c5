//go:build release

package master

const debugBuild = false
