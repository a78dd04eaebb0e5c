package hash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/codahale/blake2"
	"github.com/tv42/zbase32"

	"commandry/cli"
	"commandry/command"
	v "commandry/version"
)

var (
	OptSize    = command.Option{Name: "size", Usage: "digest size in bytes", Default: 32}
	OptZbase32 = command.Option{Name: "zbase32", Usage: "encode the digest as z-base-32 instead of hex"}
)

type hashCommand struct {
	command.Base
	command.Name
	command.Description
	command.Author
	command.Version
}

var _ = command.Command(&hashCommand{})

func (c *hashCommand) Options() []command.Option {
	return []command.Option{OptSize, OptZbase32}
}

func (c *hashCommand) Run(ctx *command.Context) error {
	size, err := ctx.Int(OptSize)
	if err != nil {
		return err
	}
	if size < 1 || size > 64 {
		return errors.New("digest size must be between 1 and 64 bytes")
	}

	var buf bytes.Buffer
	const MB = 1024 * 1024
	const Max = 256 * MB
	n, err := io.CopyN(&buf, ctx.Stdin(), Max)
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading standard input: %v", err)
	}
	if n == Max {
		return errors.New("aborting because input is unreasonably big")
	}

	h := blake2.New(&blake2.Config{Size: uint8(size)})
	_, _ = h.Write(buf.Bytes())
	digest := h.Sum(nil)

	z, err := ctx.Bool(OptZbase32)
	if err != nil {
		return err
	}
	out := hex.EncodeToString(digest)
	if z {
		out = zbase32.EncodeToString(digest)
	}
	_, err = fmt.Fprintln(ctx.Stdout(), out)
	return err
}

// Hash is exported so the unit tests can inspect it.
var Hash = hashCommand{
	Name:        "hash",
	Description: "compute a blake2 digest of standard input",
	Author:      cli.Authors,
	Version:     v.Version,
}

func init() {
	cli.Register(&Hash)
}
