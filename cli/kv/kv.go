// Package kv implements the kv command family: direct manipulation
// of a bolt key-value database kept under the data directory.
package kv

import (
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

// OptPath selects the database file, relative to the data directory.
var OptPath = command.Option{Name: "path", Usage: "path to the database, relative to the data dir", Default: "commandry.db"}

// Shared argument declarations; the subcommands read values back
// through these.
var (
	ArgBucket    = command.Argument{Name: "bucket"}
	ArgBucketOpt = command.Argument{Name: "bucket", Optional: true}
	ArgKey       = command.Argument{Name: "key"}
	ArgKeys      = command.Argument{Name: "key", Variadic: true}
)

type kvCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&kvCommand{})
var _ = command.SubcommandsGetter(&kvCommand{})

func (c *kvCommand) Options() []command.Option {
	return []command.Option{OptPath}
}

func (c *kvCommand) Subcommands() []command.Command {
	return []command.Command{&Get, &Put, &Rm, &List, &Buckets}
}

func (c *kvCommand) Run(ctx *command.Context) error {
	return command.ErrMissingSubcommand{}
}

// open opens the selected database, creating the data directory if
// needed. Callers close it.
func open(ctx *command.Context) (*bolt.DB, error) {
	dir, err := cli.DataDir(ctx)
	if err != nil {
		return nil, err
	}
	rel, err := ctx.String(OptPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return bolt.Open(filepath.Join(dir, rel), 0600, nil)
}

// Kv is exported so the unit tests can inspect it.
var Kv = kvCommand{
	Name:        "kv",
	Description: "bolt key-value manipulation",
	Author:      cli.Authors,
	Version:     v.Version,
}

func init() {
	cli.Register(&Kv)
}
