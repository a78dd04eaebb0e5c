package command

// Name contains the name the command it is embedded in registers
// under.
type Name string

// GetName returns the command name. See Command.
func (n Name) GetName() string {
	return string(n)
}

// Description contains a short description of the command it is
// embedded in.
type Description string

// GetDescription returns the description. See Command.
func (d Description) GetDescription() string {
	return string(d)
}

// Author contains the author attribution of the command it is
// embedded in.
type Author string

// GetAuthor returns the author. See Command.
func (a Author) GetAuthor() string {
	return string(a)
}

// Version contains the version of the command it is embedded in.
type Version string

// GetVersion returns the version. See Command.
func (v Version) GetVersion() string {
	return string(v)
}

// Overview contains one or more paragraphs of text giving an overview
// of the command.
type Overview string

var _ Overviewer = Overview("")

// GetOverview returns the overview text. See Overviewer.
func (o Overview) GetOverview() string {
	return string(o)
}

// Aliases contains alternate names the command it is embedded in can
// be invoked under.
type Aliases []string

var _ AliasesGetter = Aliases{}

// GetAliases returns the alternate names. See AliasesGetter.
func (a Aliases) GetAliases() []string {
	return a
}
