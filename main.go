package main

import (
	"os"

	"commandry/cli"
)

import (
	// CLI subcommands
	_ "commandry/cli/greet"
	_ "commandry/cli/hash"
	_ "commandry/cli/kv"
	_ "commandry/cli/version"
)

func main() {
	code := cli.Main()
	os.Exit(code)
}
