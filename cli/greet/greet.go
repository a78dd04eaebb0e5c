package greet

import (
	"fmt"
	"strings"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

// ArgName and OptLoud double as registration input and lookup keys.
var (
	ArgName = command.Argument{Name: "name"}
	OptLoud = command.Option{Name: "loud", Usage: "greet in all caps"}
)

type greetCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
	command.Overview
}

var _ = command.Command(&greetCommand{})
var _ = command.ArgumentsGetter(&greetCommand{})
var _ = command.OptionsGetter(&greetCommand{})

func (c *greetCommand) Arguments() []command.Argument {
	return []command.Argument{ArgName}
}

func (c *greetCommand) Options() []command.Option {
	return []command.Option{OptLoud}
}

func (c *greetCommand) Run(ctx *command.Context) error {
	who, err := ctx.Argument(ArgName)
	if err != nil {
		return err
	}
	loud, err := ctx.Bool(OptLoud)
	if err != nil {
		return err
	}
	greeting := fmt.Sprintf("Hello, %s!", who)
	if loud {
		greeting = strings.ToUpper(greeting)
	}
	_, err = fmt.Fprintln(ctx.Stdout(), greeting)
	return err
}

// Greet is exported so the unit tests can inspect it.
var Greet = greetCommand{
	Name:        "greet",
	Description: "greet someone by name",
	Author:      cli.Authors,
	Version:     v.Version,
	Overview: `
Greets NAME on standard output. Mostly useful as a smoke test for the
command plumbing.
`,
}

func init() {
	cli.Register(&Greet)
}
