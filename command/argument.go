package command

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// Argument declares a positional argument. Name is the lookup key
// used to read the parsed value back; Metavar overrides the
// upper-cased name in usage output.
//
// Mandatory arguments must precede optional ones, and a variadic
// argument consumes the rest of the command line and must come last.
type Argument struct {
	Name     string
	Metavar  string
	Optional bool
	Variadic bool
}

func (a Argument) metavar() string {
	name := a.Metavar
	if name == "" {
		name = strings.ToUpper(a.Name)
	}
	if a.Variadic {
		name += ".."
	}
	return name
}

// ValidateArguments checks that a declaration list is well-formed.
func ValidateArguments(decl []Argument) error {
	optional := false
	for i, a := range decl {
		if a.Name == "" {
			return errors.New("argument declared without a name")
		}
		for _, prev := range decl[:i] {
			if prev.Name == a.Name {
				return errors.New("argument declared twice: " + a.Name)
			}
		}
		if a.Variadic && i != len(decl)-1 {
			return errors.New("cannot declare arguments after a variadic argument")
		}
		if optional && !a.Optional {
			return errors.New("mandatory argument cannot follow an optional argument")
		}
		if a.Optional {
			optional = true
		}
	}
	return nil
}

// Synopsis returns a string suitable for use in a command line
// synopsis, with optional arguments in nested brackets and a ".."
// suffix on a variadic argument.
func Synopsis(decl []Argument) string {
	metas := []string{}
	nest := 0
	for _, a := range decl {
		if a.Optional {
			metas = append(metas, "["+a.metavar())
			nest++
			continue
		}
		metas = append(metas, a.metavar())
	}
	if nest > 0 {
		metas[len(metas)-1] += strings.Repeat("]", nest)
	}
	return strings.Join(metas, " ")
}

// Arity returns a validator enforcing the declared argument count.
//
// A variadic argument never counts as mandatory; it consumes whatever
// is left, possibly nothing.
//
// The validator returns an error of type ErrMissingMandatoryArg if a
// mandatory argument was not supplied, and of type ErrTooManyArgs if
// there are more arguments than declarations.
func Arity(decl []Argument) Validator {
	mandatory := 0
	variadic := false
	for _, a := range decl {
		if a.Variadic {
			variadic = true
			continue
		}
		if !a.Optional {
			mandatory++
		}
	}
	return func(c *cobra.Command, args []string) error {
		if len(args) < mandatory {
			return ErrMissingMandatoryArg{Name: decl[len(args)].metavar()}
		}
		if !variadic && len(args) > len(decl) {
			return ErrTooManyArgs{}
		}
		return nil
	}
}
