package command

import "github.com/spf13/cobra"

// Option declares a named "--foo" style option. The dynamic type of
// Default selects the flag type: bool, string, int, time.Duration, or
// any pflag.Value implementation. A nil Default declares a plain
// boolean flag.
//
// Like Argument, a declaration serves double duty: it is mirrored
// into the dispatcher at registration time and used as the lookup key
// when reading the parsed value back.
type Option struct {
	Name      string
	Shorthand string
	Usage     string
	Default   interface{}
}

// Validator is a dispatcher-native rule evaluated against the parsed
// positional arguments before the command is invoked. Validators are
// forwarded to the dispatcher verbatim, never interpreted here.
type Validator = cobra.PositionalArgs
