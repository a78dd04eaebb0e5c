// Package command defines the contract between commands and the
// registrar that dispatches them.
//
// Each command is a value implementing Command. Optional interfaces
// let a command declare positional arguments, options, validators,
// aliases and subcommands; embeddable helper types supply the common
// pieces so simple commands stay short. See the cli tree for example
// commands.
package command
