//go:build !release

package master

const debugBuild = true
