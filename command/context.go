package command

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"commandry/cliutil/strconvx"
)

// Context is the parse result handed to a command when the dispatcher
// invokes it. It wraps the dispatcher-native entry and the positional
// arguments that matched the command, and resolves declared inputs
// back to their runtime values.
//
// A Context exists if and only if dispatch of its command has begun;
// commands never see a partially filled one.
type Context struct {
	cmd  *cobra.Command
	args []string
	decl []Argument
}

// NewContext wraps a dispatched entry and its leftover positional
// arguments. Called by the registrar as dispatch begins.
func NewContext(c *cobra.Command, args []string, decl []Argument) *Context {
	return &Context{cmd: c, args: args, decl: decl}
}

// Stdout returns the writer command output should go to. It honors
// output redirection on the registrar, which tests use.
func (c *Context) Stdout() io.Writer {
	return c.cmd.OutOrStdout()
}

// Stderr returns the writer diagnostics should go to.
func (c *Context) Stderr() io.Writer {
	return c.cmd.ErrOrStderr()
}

// Stdin returns the reader command input comes from.
func (c *Context) Stdin() io.Reader {
	return c.cmd.InOrStdin()
}

func (c *Context) position(a Argument) (int, bool) {
	for i, d := range c.decl {
		if d.Name == a.Name {
			return i, true
		}
	}
	return 0, false
}

// Argument returns the exact value supplied for a declared positional
// argument.
//
// It returns an error of type ErrValueNotFound if the argument was
// never declared, or was declared optional and not supplied.
func (c *Context) Argument(a Argument) (string, error) {
	idx, ok := c.position(a)
	if !ok || idx >= len(c.args) {
		return "", ErrValueNotFound{Kind: "argument", Name: a.Name}
	}
	return c.args[idx], nil
}

// Varargs returns the values consumed by a declared variadic
// argument. The list is empty when no values were supplied; the error
// is of type ErrValueNotFound only when the declaration itself is
// unknown or not variadic.
func (c *Context) Varargs(a Argument) ([]string, error) {
	idx, ok := c.position(a)
	if !ok || !c.decl[idx].Variadic {
		return nil, ErrValueNotFound{Kind: "argument", Name: a.Name}
	}
	if idx >= len(c.args) {
		return nil, nil
	}
	return c.args[idx:], nil
}

// DecodeArgument converts the supplied value for a declared argument
// into the type pointed to by value, using strconvx conversion rules.
func (c *Context) DecodeArgument(a Argument, value interface{}) error {
	s, err := c.Argument(a)
	if err != nil {
		return err
	}
	return strconvx.Parse(value, s)
}

func (c *Context) flag(o Option) (*pflag.Flag, error) {
	fl := c.cmd.Flags().Lookup(o.Name)
	if fl == nil {
		return nil, ErrValueNotFound{Kind: "option", Name: o.Name}
	}
	return fl, nil
}

// Bool returns the parsed value of a boolean option.
func (c *Context) Bool(o Option) (bool, error) {
	if _, err := c.flag(o); err != nil {
		return false, err
	}
	return c.cmd.Flags().GetBool(o.Name)
}

// String returns the parsed value of a string option.
func (c *Context) String(o Option) (string, error) {
	if _, err := c.flag(o); err != nil {
		return "", err
	}
	return c.cmd.Flags().GetString(o.Name)
}

// Int returns the parsed value of an integer option.
func (c *Context) Int(o Option) (int, error) {
	if _, err := c.flag(o); err != nil {
		return 0, err
	}
	return c.cmd.Flags().GetInt(o.Name)
}

// Duration returns the parsed value of a duration option.
func (c *Context) Duration(o Option) (time.Duration, error) {
	if _, err := c.flag(o); err != nil {
		return 0, err
	}
	return c.cmd.Flags().GetDuration(o.Name)
}

// Option returns the parsed value of a declared option, typed
// according to its declared default. Options backed by a pflag.Value
// come back in their string form.
//
// The dispatcher resolves unsupplied options to their declared
// defaults, so the only lookup failure here is an undeclared option;
// that returns an error of type ErrValueNotFound.
func (c *Context) Option(o Option) (interface{}, error) {
	fl, err := c.flag(o)
	if err != nil {
		return nil, err
	}
	switch o.Default.(type) {
	case nil:
		return c.cmd.Flags().GetBool(o.Name)
	case bool:
		return c.cmd.Flags().GetBool(o.Name)
	case string:
		return c.cmd.Flags().GetString(o.Name)
	case int:
		return c.cmd.Flags().GetInt(o.Name)
	case time.Duration:
		return c.cmd.Flags().GetDuration(o.Name)
	default:
		return fl.Value.String(), nil
	}
}
