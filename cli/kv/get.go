package kv

import (
	"errors"

	"github.com/boltdb/bolt"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

type getCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&getCommand{})

func (c *getCommand) Arguments() []command.Argument {
	return []command.Argument{ArgBucket, ArgKey}
}

func (c *getCommand) Run(ctx *command.Context) error {
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

	db, err := open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	dbg := cli.Debug(ctx)
	dbg(struct{ Op, Bucket, Key string }{"get", bucketArg, keyArg})

	var val []byte
	err = db.View(func(tx *bolt.Tx) error {
		bucket, err := lookupBucket(tx, buckets)
		if err != nil {
			return err
		}
		val = bucket.Get(key)
		return nil
	})
	if err != nil {
		return err
	}
	if val == nil {
		return errors.New("database key not found")
	}
	_, err = ctx.Stdout().Write(val)
	return err
}

// Get is exported so kv can register it as a subcommand.
var Get = getCommand{
	Name:        "get",
	Description: "get a value from the database",
	Author:      cli.Authors,
	Version:     v.Version,
}
