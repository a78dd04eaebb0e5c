package command_test

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"commandry/command"
)

var (
	argBucket = command.Argument{Name: "bucket"}
	argKey    = command.Argument{Name: "key", Optional: true}
	argRest   = command.Argument{Name: "rest", Optional: true, Variadic: true}

	optLoud  = command.Option{Name: "loud", Usage: "greet loudly"}
	optCount = command.Option{Name: "count", Default: 1}
	optWait  = command.Option{Name: "wait", Default: time.Second}
	optName  = command.Option{Name: "name", Default: "anon"}
)

func newContext(t testing.TB, args []string, decl []command.Argument, flags []string) *command.Context {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().Bool(optLoud.Name, false, optLoud.Usage)
	c.Flags().Int(optCount.Name, 1, "")
	c.Flags().Duration(optWait.Name, time.Second, "")
	c.Flags().String(optName.Name, "anon", "")
	if err := c.ParseFlags(flags); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return command.NewContext(c, args, decl)
}

func TestContextArgument(t *testing.T) {
	ctx := newContext(t, []string{"logs", "k1"}, []command.Argument{argBucket, argKey}, nil)
	if g, e := mustArg(t, ctx, argBucket), "logs"; g != e {
		t.Errorf("unexpected argument: %q != %q", g, e)
	}
	if g, e := mustArg(t, ctx, argKey), "k1"; g != e {
		t.Errorf("unexpected argument: %q != %q", g, e)
	}
}

func mustArg(t testing.TB, ctx *command.Context, a command.Argument) string {
	t.Helper()
	v, err := ctx.Argument(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestContextArgumentUndeclared(t *testing.T) {
	ctx := newContext(t, []string{"logs"}, []command.Argument{argBucket}, nil)
	_, err := ctx.Argument(command.Argument{Name: "bogus"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	nf, ok := err.(command.ErrValueNotFound)
	if !ok {
		t.Fatalf("unexpected error type: %T", err)
	}
	if g, e := nf.Kind, "argument"; g != e {
		t.Errorf("unexpected kind: %q != %q", g, e)
	}
	if g, e := err.Error(), "argument value not found: bogus"; g != e {
		t.Errorf("unexpected error message: %q != %q", g, e)
	}
}

func TestContextArgumentUnsupplied(t *testing.T) {
	ctx := newContext(t, []string{"logs"}, []command.Argument{argBucket, argKey}, nil)
	_, err := ctx.Argument(argKey)
	if _, ok := err.(command.ErrValueNotFound); !ok {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestContextVarargs(t *testing.T) {
	decl := []command.Argument{argBucket, argRest}
	ctx := newContext(t, []string{"logs", "a", "b"}, decl, nil)
	rest, err := ctx.Varargs(argRest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := len(rest), 2; g != e {
		t.Fatalf("unexpected varargs length: %v != %v", g, e)
	}
	if g, e := rest[0], "a"; g != e {
		t.Errorf("unexpected vararg: %q != %q", g, e)
	}

	ctx = newContext(t, []string{"logs"}, decl, nil)
	rest, err = ctx.Varargs(argRest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected empty varargs, got %v", rest)
	}
}

func TestContextVarargsNotVariadic(t *testing.T) {
	ctx := newContext(t, []string{"logs"}, []command.Argument{argBucket}, nil)
	_, err := ctx.Varargs(argBucket)
	if _, ok := err.(command.ErrValueNotFound); !ok {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestContextDecodeArgument(t *testing.T) {
	decl := []command.Argument{{Name: "count"}}
	ctx := newContext(t, []string{"42"}, decl, nil)
	var n int
	if err := ctx.DecodeArgument(decl[0], &n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := n, 42; g != e {
		t.Errorf("unexpected value: %v != %v", g, e)
	}
}

func TestContextOptions(t *testing.T) {
	ctx := newContext(t, nil, nil, []string{"--loud", "--count=3", "--wait=2s"})
	loud, err := ctx.Bool(optLoud)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := loud, true; g != e {
		t.Errorf("unexpected option: %v != %v", g, e)
	}
	n, err := ctx.Int(optCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := n, 3; g != e {
		t.Errorf("unexpected option: %v != %v", g, e)
	}
	d, err := ctx.Duration(optWait)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := d, 2*time.Second; g != e {
		t.Errorf("unexpected option: %v != %v", g, e)
	}
	name, err := ctx.String(optName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g, e := name, "anon"; g != e {
		t.Errorf("unexpected option default: %q != %q", g, e)
	}
}

func TestContextOptionTyped(t *testing.T) {
	ctx := newContext(t, nil, nil, []string{"--count=7"})
	v, err := ctx.Option(optCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := v.(int)
	if !ok {
		t.Fatalf("unexpected value type: %T", v)
	}
	if g, e := n, 7; g != e {
		t.Errorf("unexpected option: %v != %v", g, e)
	}
}

func TestContextOptionUndeclared(t *testing.T) {
	ctx := newContext(t, nil, nil, nil)
	_, err := ctx.Option(command.Option{Name: "bogus"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	nf, ok := err.(command.ErrValueNotFound)
	if !ok {
		t.Fatalf("unexpected error type: %T", err)
	}
	if g, e := nf.Kind, "option"; g != e {
		t.Errorf("unexpected kind: %q != %q", g, e)
	}
}
