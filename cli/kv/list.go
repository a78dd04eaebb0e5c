package kv

import (
	"fmt"

	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type listCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&listCommand{})

func (c *listCommand) Arguments() []command.Argument {
	return []command.Argument{ArgBucket}
}

// TODO could support ranges and prefixes

func (c *listCommand) Run(ctx *command.Context) error {
	bucketArg, err := ctx.Argument(ArgBucket)
	if err != nil {
		return err
	}
	buckets, err := splitBuckets(bucketArg)
	if err != nil {
		return err
	}

	db, err := open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.View(func(tx *bolt.Tx) error {
		bucket, err := lookupBucket(tx, buckets)
		if err != nil {
			return err
		}
		cur := bucket.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			if v == nil {
				// skip buckets
				continue
			}
			if _, err := fmt.Fprintln(ctx.Stdout(), encodeKey(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

// List is exported so kv can register it as a subcommand.
var List = listCommand{
	Name:        "list",
	Description: "list keys in the database",
	Author:      cli.Authors,
	Version:     v.Version,
}
