package version

import (
	"fmt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type versionCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
	command.Aliases
}

var _ = command.Command(&versionCommand{})

func (c *versionCommand) Run(ctx *command.Context) error {
	_, err := fmt.Fprintln(ctx.Stdout(), v.Version)
	return err
}

// Cmd is exported so the unit tests can inspect it.
var Cmd = versionCommand{
	Name:        "version",
	Description: "show version number",
	Author:      cli.Authors,
	Version:     v.Version,
	Aliases:     command.Aliases{"v"},
}

func init() {
	cli.Register(&Cmd)
}
