package command

// ErrContextNotReady indicates that a command tried to read its parse
// context before the dispatcher invoked it. This is a bug in the
// command implementation, not bad input.
type ErrContextNotReady struct {
	Command string
}

func (e ErrContextNotReady) Error() string {
	if e.Command == "" {
		return "command context not ready"
	}
	return "command context not ready: " + e.Command
}

// ErrValueNotFound indicates that a requested argument or option was
// never declared, or was declared but no value was supplied. Kind is
// "argument" or "option".
type ErrValueNotFound struct {
	Kind string
	Name string
}

func (e ErrValueNotFound) Error() string {
	return e.Kind + " value not found: " + e.Name
}

// ErrMissingMandatoryArg indicates that a mandatory argument is
// missing.
type ErrMissingMandatoryArg struct {
	Name string
}

func (e ErrMissingMandatoryArg) Error() string {
	return "missing mandatory argument: " + e.Name
}

// ErrTooManyArgs indicates that there were too many arguments.
type ErrTooManyArgs struct{}

func (ErrTooManyArgs) Error() string {
	return "too many arguments"
}

// ErrMissingSubcommand indicates that a subcommand is needed but was
// not seen in the arguments.
type ErrMissingSubcommand struct{}

func (ErrMissingSubcommand) Error() string {
	return "missing mandatory subcommand"
}

// ErrDuplicateCommand indicates an attempt to register a second
// command under a name that is already taken.
type ErrDuplicateCommand struct {
	Name string
}

func (e ErrDuplicateCommand) Error() string {
	return "command already registered: " + e.Name
}
