package kv

import (
	"errors"
	"fmt"

	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type bucketsCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&bucketsCommand{})

func (c *bucketsCommand) Arguments() []command.Argument {
	return []command.Argument{ArgBucketOpt}
}

func (c *bucketsCommand) runRoot(ctx *command.Context, db *bolt.DB) error {
	return db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bolt.Bucket) error {
			_, err := fmt.Fprintln(ctx.Stdout(), encodeKey(name))
			return err
		})
	})
}

func (c *bucketsCommand) runSub(ctx *command.Context, db *bolt.DB, buckets [][]byte) error {
	return db.View(func(tx *bolt.Tx) error {
		bucket, err := lookupBucket(tx, buckets)
		if err != nil {
			return err
		}
		cur := bucket.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			if v != nil {
				// not a bucket
				continue
			}
			if _, err := fmt.Fprintln(ctx.Stdout(), encodeKey(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *bucketsCommand) Run(ctx *command.Context) error {
	db, err := open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sel, err := ctx.Argument(ArgBucketOpt)
	if err != nil {
		var notFound command.ErrValueNotFound
		if !errors.As(err, &notFound) {
			return err
		}
		return c.runRoot(ctx, db)
	}
	buckets, err := splitBuckets(sel)
	if err != nil {
		return err
	}
	return c.runSub(ctx, db, buckets)
}

// Buckets is exported so kv can register it as a subcommand.
var Buckets = bucketsCommand{
	Name:        "buckets",
	Description: "list buckets in the database",
	Author:      cli.Authors,
	Version:     v.Version,
}
