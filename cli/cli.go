// Package cli wires the commandry command line application together:
// the global options, the command set, and the entry point.
package cli

import (
	"log"
	"os"
	"path/filepath"

	"github.com/tv42/jog"

	"commandry/cliutil/flagx"
	"commandry/command"
	"commandry/defaults"
	"commandry/registrar"
)

// Authors is the attribution stamped on the builtin commands.
const Authors = "commandry authors"

// Global options, registered on the root and inherited by every
// command. Commands read them back through their parse context.
var (
	OptVerbose = command.Option{Name: "verbose", Shorthand: "v", Usage: "verbose output"}
	OptDebug   = command.Option{Name: "debug", Usage: "debug output"}
	OptDataDir = command.Option{Name: "data-dir", Usage: "path to command state", Default: newDataDir()}
)

func newDataDir() *flagx.AbsPath {
	p := flagx.AbsPath(defaults.DataDir())
	return &p
}

var commands []command.Command

// Register adds a command to the set wired up by Main. Typically
// called from init in the package defining the command.
func Register(cmd command.Command) {
	commands = append(commands, cmd)
}

// Verbose reports whether verbose output was requested.
func Verbose(ctx *command.Context) bool {
	on, err := ctx.Bool(OptVerbose)
	return err == nil && on
}

// DataDir returns the data directory selected for this invocation.
func DataDir(ctx *command.Context) (string, error) {
	v, err := ctx.Option(OptDataDir)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Debug returns an event logger for debug output. Unless --debug was
// given, the returned function discards its argument.
func Debug(ctx *command.Context) func(interface{}) {
	if on, err := ctx.Bool(OptDebug); err != nil || !on {
		return func(interface{}) {}
	}
	l := jog.New(nil)
	return l.Event
}

// Main is the primary entry point into the commandry command line
// application. It returns the process exit status.
func Main() int {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	r := registrar.New(os.Args, "small stateful commands, one registrar")
	if err := r.GlobalOptions(OptVerbose, OptDebug, OptDataDir); err != nil {
		log.Printf("error: %v", err)
		return 2
	}
	if err := r.RegisterAll(commands...); err != nil {
		log.Printf("error: %v", err)
		return 2
	}
	return r.Execute()
}
