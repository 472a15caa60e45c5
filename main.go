package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/inputmaster/debugger"
	"github.com/jetsetilly/inputmaster/gui"
	"github.com/jetsetilly/inputmaster/master"
	"github.com/jetsetilly/inputmaster/statsview"
	"github.com/jetsetilly/inputmaster/ui"
	"github.com/jetsetilly/inputmaster/version"
)

const programName = "inputmaster"

func main() {
	var opts gui.Options
	var editor bool
	var nodebug bool
	var stats bool

	opts.Context = master.DefaultContext()

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&opts.Backend, "backend", gui.BackendEbiten, "input backend: ebiten or sdl")
	flgs.IntVar(&opts.TPS, "tps", 60, "number of registry updates per second")
	flgs.BoolVar(&editor, "editor", false, "run in the editor context")
	flgs.BoolVar(&nodebug, "nodebug", !opts.Context.Debug, "do not update debug only controls")
	flgs.BoolVar(&stats, "statsview", false, "run the runtime statistics server")
	err := flgs.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}
	if len(flgs.Args()) > 0 {
		fmt.Printf("*** too many arguments to %s\n", programName)
		os.Exit(10)
	}

	opts.Context.Editor = editor
	opts.Context.Debug = !nodebug

	if stats {
		statsview.Launch(os.Stdout)
	}

	fmt.Println(version.Title())

	var endGui chan bool
	var endDebugger chan bool
	var resultGui chan error
	var resultDebugger chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the debugger and vice versa
	endGui = make(chan bool, 1)
	endDebugger = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and debugger will end
	resultGui = make(chan error, 1)
	resultDebugger = make(chan error, 1)

	u := ui.NewUI()

	go func() {
		resultGui <- gui.Launch(endGui, u, opts)
		endDebugger <- true
	}()

	go func() {
		resultDebugger <- debugger.Launch(endDebugger, u)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultDebugger; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
