package registrar

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"commandry/command"
)

func register(parent *cobra.Command, cmd command.Command) error {
	name := cmd.GetName()
	if name == "" {
		return errors.New("cannot register a command without a name")
	}
	for _, prev := range parent.Commands() {
		if prev.Name() == name {
			return command.ErrDuplicateCommand{Name: name}
		}
	}

	entry := &cobra.Command{
		Short:   cmd.GetDescription(),
		Version: cmd.GetVersion(),
	}
	if o, ok := cmd.(command.Overviewer); ok {
		entry.Long = o.GetOverview()
	}
	if author := cmd.GetAuthor(); author != "" {
		entry.Annotations = map[string]string{"author": author}
	}

	// The copies below all mutate entry; they run strictly in order.
	decl := declaredArguments(cmd)
	if err := copyArguments(entry, name, decl); err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	if err := copyOptions(entry.PersistentFlags(), declaredOptions(cmd)); err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	copyValidators(entry, declaredValidators(cmd))
	copyAliases(entry, declaredAliases(cmd))

	if init, ok := cmd.(interface{ Init(string) }); ok {
		init.Init(name)
	}
	entry.RunE = func(c *cobra.Command, args []string) error {
		ctx := command.NewContext(c, args, decl)
		if b, ok := cmd.(interface{ Bind(*command.Context) }); ok {
			b.Bind(ctx)
		}
		if err := cmd.Run(ctx); err != nil {
			return &runError{err: err}
		}
		return nil
	}

	if s, ok := cmd.(command.SubcommandsGetter); ok {
		for _, sub := range s.Subcommands() {
			if err := register(entry, sub); err != nil {
				return err
			}
		}
	}

	parent.AddCommand(entry)
	return nil
}

func declaredArguments(cmd command.Command) []command.Argument {
	if g, ok := cmd.(command.ArgumentsGetter); ok {
		return g.Arguments()
	}
	return nil
}

func declaredOptions(cmd command.Command) []command.Option {
	if g, ok := cmd.(command.OptionsGetter); ok {
		return g.Options()
	}
	return nil
}

func declaredValidators(cmd command.Command) []command.Validator {
	if g, ok := cmd.(command.ValidatorsGetter); ok {
		return g.Validators()
	}
	return nil
}

func declaredAliases(cmd command.Command) []string {
	if g, ok := cmd.(command.AliasesGetter); ok {
		return g.GetAliases()
	}
	return nil
}

func copyArguments(entry *cobra.Command, name string, decl []command.Argument) error {
	if err := command.ValidateArguments(decl); err != nil {
		return err
	}
	entry.Use = name
	if syn := command.Synopsis(decl); syn != "" {
		entry.Use = name + " " + syn
	}
	entry.Args = command.Arity(decl)
	return nil
}

func copyOptions(flags *pflag.FlagSet, opts []command.Option) error {
	for _, o := range opts {
		if o.Name == "" {
			return errors.New("cannot declare an option without a name")
		}
		if flags.Lookup(o.Name) != nil {
			return errors.New("option declared twice: --" + o.Name)
		}
		switch def := o.Default.(type) {
		case nil:
			flags.BoolP(o.Name, o.Shorthand, false, o.Usage)
		case bool:
			flags.BoolP(o.Name, o.Shorthand, def, o.Usage)
		case string:
			flags.StringP(o.Name, o.Shorthand, def, o.Usage)
		case int:
			flags.IntP(o.Name, o.Shorthand, def, o.Usage)
		case time.Duration:
			flags.DurationP(o.Name, o.Shorthand, def, o.Usage)
		case pflag.Value:
			flags.VarP(def, o.Name, o.Shorthand, o.Usage)
		default:
			return fmt.Errorf("cannot declare an option of type %T", o.Default)
		}
	}
	return nil
}

func copyValidators(entry *cobra.Command, validators []command.Validator) {
	if len(validators) == 0 {
		return
	}
	all := append([]command.Validator{entry.Args}, validators...)
	entry.Args = cobra.MatchAll(all...)
}

func copyAliases(entry *cobra.Command, aliases []string) {
	entry.Aliases = append(entry.Aliases, aliases...)
}
