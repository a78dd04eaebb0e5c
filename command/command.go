package command

// Command is implemented by every registrable command. Name,
// Description, Author and Version identify the command and are
// mirrored into the dispatcher as-is; Run is invoked once the
// dispatcher has selected the command and parsed its inputs.
//
// The typical way to implement the identity methods is to embed the
// Name, Description, Author and Version helper types in the command
// struct and fill them in when declaring the variable.
type Command interface {
	GetName() string
	GetDescription() string
	GetAuthor() string
	GetVersion() string
	Run(ctx *Context) error
}

// ArgumentsGetter is implemented by commands that take positional
// arguments. The declarations are mirrored into the dispatcher for
// usage output and arity checking, and used again at read time to
// locate the parsed values.
type ArgumentsGetter interface {
	Arguments() []Argument
}

// OptionsGetter is implemented by commands that take "--foo" style
// options.
type OptionsGetter interface {
	Options() []Option
}

// ValidatorsGetter is implemented by commands that want extra
// dispatcher-native rules evaluated against the parsed input before
// Run is invoked. The validators are forwarded verbatim.
type ValidatorsGetter interface {
	Validators() []Validator
}

// AliasesGetter is implemented by commands reachable under alternate
// names.
//
// The typical way to implement this is to embed Aliases in the
// command struct.
type AliasesGetter interface {
	GetAliases() []string
}

// SubcommandsGetter is implemented by commands that carry their own
// subcommands. The subcommands are registered under the command's
// entry, recursively.
type SubcommandsGetter interface {
	Subcommands() []Command
}

// Overviewer is used to give an overview explanation of the command,
// shown in the help output after the synopsis.
//
// The typical way to implement this is to embed Overview in the
// command struct and give the text when declaring the variable.
type Overviewer interface {
	GetOverview() string
}
