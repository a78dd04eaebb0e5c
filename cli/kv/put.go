package kv

import (
	"fmt"
	"io"

	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type putCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
	command.Overview
}

var _ = command.Command(&putCommand{})

func (c *putCommand) Arguments() []command.Argument {
	return []command.Argument{ArgBucket, ArgKey}
}

func (c *putCommand) Run(ctx *command.Context) error {
	bucketArg, err := ctx.Argument(ArgBucket)
	if err != nil {
		return err
	}
	keyArg, err := ctx.Argument(ArgKey)
	if err != nil {
		return err
	}
	buckets, err := splitBuckets(bucketArg)
	if err != nil {
		return err
	}
	key, err := decodeKey(keyArg)
	if err != nil {
		return err
	}
	val, err := io.ReadAll(ctx.Stdin())
	if err != nil {
		return err
	}

	db, err := open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	dbg := cli.Debug(ctx)
	dbg(struct {
		Op, Bucket, Key string
		Size            int
	}{"put", bucketArg, keyArg, len(val)})

	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := createBuckets(tx, buckets)
		if err != nil {
			return err
		}
		return bucket.Put(key, val)
	})
	if err != nil {
		return err
	}
	if cli.Verbose(ctx) {
		fmt.Fprintf(ctx.Stderr(), "stored %d bytes\n", len(val))
	}
	return nil
}

// Put is exported so kv can register it as a subcommand.
var Put = putCommand{
	Name:        "put",
	Description: "put a value into the database",
	Author:      cli.Authors,
	Version:     v.Version,
	Overview: `
Reads the value from standard input and stores it under KEY, creating
the bucket path as needed.
`,
}
