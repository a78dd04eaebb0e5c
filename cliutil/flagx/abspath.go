package flagx

import (
	"errors"
	"path/filepath"

	"github.com/spf13/pflag"
)

// AbsPath is a pflag.Value that wraps a string and resolves it to an
// absolute path when set.
type AbsPath string

var _ = pflag.Value((*AbsPath)(nil))

func (a AbsPath) String() string {
	return string(a)
}

var EmptyPathError = errors.New("empty path not allowed")

func (a *AbsPath) Set(value string) error {
	if value == "" {
		return EmptyPathError
	}
	path, err := filepath.Abs(value)
	if err != nil {
		return err
	}
	*a = AbsPath(path)
	return nil
}

func (AbsPath) Type() string {
	return "abspath"
}
