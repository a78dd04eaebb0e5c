package kv

import (
	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type rmCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&rmCommand{})

func (c *rmCommand) Arguments() []command.Argument {
	return []command.Argument{ArgBucket, ArgKeys}
}

func (c *rmCommand) Run(ctx *command.Context) error {
	bucketArg, err := ctx.Argument(ArgBucket)
	if err != nil {
		return err
	}
	keyArgs, err := ctx.Varargs(ArgKeys)
	if err != nil {
		return err
	}
	buckets, err := splitBuckets(bucketArg)
	if err != nil {
		return err
	}
	keys := make([][]byte, 0, len(keyArgs))
	for _, q := range keyArgs {
		key, err := decodeKey(q)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}

	db, err := open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	dbg := cli.Debug(ctx)
	dbg(struct {
		Op, Bucket string
		Keys       int
	}{"rm", bucketArg, len(keys)})

	return db.Update(func(tx *bolt.Tx) error {
		bucket, err := lookupBucket(tx, buckets)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Rm is exported so kv can register it as a subcommand.
var Rm = rmCommand{
	Name:        "rm",
	Description: "remove keys from the database",
	Author:      cli.Authors,
	Version:     v.Version,
}
