package command

// Base carries the invocation-time state every command needs. Embed
// it in a command struct to get the context accessors; the registrar
// fills it in, Init at registration time and Bind as dispatch begins.
//
// Until Bind has happened there is no parse context, and the
// accessors fail with ErrContextNotReady instead of handing out stale
// or empty values.
type Base struct {
	name string
	ctx  *Context
}

// Init records the name the command registered under, so errors can
// name it. Called by the registrar.
func (b *Base) Init(name string) {
	b.name = name
}

// Bind stores the parse context. Called by the registrar exactly once
// per dispatch, just before Run.
func (b *Base) Bind(ctx *Context) {
	b.ctx = ctx
}

// Context returns the parse context, or an error of type
// ErrContextNotReady when dispatch has not begun.
func (b *Base) Context() (*Context, error) {
	if b.ctx == nil {
		return nil, ErrContextNotReady{Command: b.name}
	}
	return b.ctx, nil
}

// ReadArgument returns the parsed value for a declared argument. See
// Context.Argument.
func (b *Base) ReadArgument(a Argument) (string, error) {
	ctx, err := b.Context()
	if err != nil {
		return "", err
	}
	return ctx.Argument(a)
}

// ReadOption returns the parsed value for a declared option. See
// Context.Option.
func (b *Base) ReadOption(o Option) (interface{}, error) {
	ctx, err := b.Context()
	if err != nil {
		return nil, err
	}
	return ctx.Option(o)
}
