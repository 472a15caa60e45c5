// Package statsview runs a local HTTP server offering runtime statistics of
// the program. It is only functional when the program is built with the
// "statsview" build tag. The server is provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12700/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12700/debug/pprof/
package statsview
