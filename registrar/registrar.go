// Package registrar owns the root dispatcher command and copies
// command declarations into it.
//
// The actual parsing, help generation and routing all belong to the
// dispatcher, github.com/spf13/cobra; this package only mirrors what
// commands declare and wires dispatch back to their Run hooks.
package registrar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"commandry/command"
)

func init() {
	// keep help output in registration order
	cobra.EnableCommandSorting = false
}

// Registrar owns exactly one root dispatcher command for its lifetime
// and the raw argument vector it was constructed with.
type Registrar struct {
	root   *cobra.Command
	args   []string
	stderr io.Writer
}

// New returns a Registrar for the given argument vector, os.Args
// style: args[0] names the program, the rest is parsed on Execute.
// The vector is taken verbatim, no preprocessing.
func New(args []string, description string) *Registrar {
	name := "command"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	root := &cobra.Command{
		Use:   name,
		Short: description,
		// error and usage reporting happens in Execute, where the
		// exit code is decided
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	return &Registrar{
		root:   root,
		args:   rest,
		stderr: os.Stderr,
	}
}

// SetIn redirects command input, mainly for tests.
func (r *Registrar) SetIn(in io.Reader) {
	r.root.SetIn(in)
}

// SetOut redirects command and help output, mainly for tests.
func (r *Registrar) SetOut(w io.Writer) {
	r.root.SetOut(w)
}

// SetErr redirects error output, mainly for tests.
func (r *Registrar) SetErr(w io.Writer) {
	r.root.SetErr(w)
	r.stderr = w
}

// GlobalOptions declares options on the root; they apply to every
// registered command and are read back through the same declarations.
func (r *Registrar) GlobalOptions(opts ...command.Option) error {
	return copyOptions(r.root.PersistentFlags(), opts)
}

// Register creates a dispatcher entry for the command, copies its
// declared arguments, options, validators and aliases into the entry,
// binds the entry's invocation to the command's Run hook, and
// attaches it under the root.
//
// Registering a second command under a name that is already taken
// fails with an error of type ErrDuplicateCommand and leaves the
// earlier registration untouched.
func (r *Registrar) Register(cmd command.Command) error {
	return register(r.root, cmd)
}

// RegisterAll registers the commands in order. Order is irrelevant to
// routing but shows in the help output.
func (r *Registrar) RegisterAll(cmds ...command.Command) error {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// runError marks an error as coming from a command's Run hook, as
// opposed to the dispatcher failing to parse or validate input.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

// Execute parses the stored argument vector, invokes the matching
// command's hook, and returns the process exit status: 0 on success,
// 1 when the hook fails, 2 when parsing or validation fails before
// any hook runs.
func (r *Registrar) Execute() int {
	r.root.SetArgs(r.args)
	c, err := r.root.ExecuteC()
	if err == nil {
		return 0
	}

	var run *runError
	if errors.As(err, &run) {
		var missing command.ErrMissingSubcommand
		if !errors.As(run.err, &missing) {
			fmt.Fprintf(r.stderr, "%s: error: %v\n", c.CommandPath(), run.err)
			return 1
		}
		// a bare parent command is a usage error, report it as one
	}

	fmt.Fprintf(r.stderr, "%s: %v\n", c.CommandPath(), err)
	_ = c.Usage()
	return 2
}
