package cmdline

// SubcommandConfigurator configures a subcommand passed to
// Builder.WithSubcommand.
type SubcommandConfigurator func(SubcommandBuilder) SubcommandBuilder

// SubcommandBuilder accumulates the options and flags of a single
// subcommand. Like Builder, it is an immutable value.
//
// Defaults set on a SubcommandBuilder apply to its own options. Defaults it
// leaves unset are taken from the parent Builder when the parent is built.
type SubcommandBuilder struct {
	name    string
	options optionState
}

// NewSubcommandBuilder creates a builder for the named subcommand.
func NewSubcommandBuilder(name string) SubcommandBuilder {
	return SubcommandBuilder{name: name}
}

// Name returns the subcommand name.
func (s SubcommandBuilder) Name() string {
	return s.name
}

// WithOption appends an option. It is a no-op when value is empty.
func (s SubcommandBuilder) WithOption(name, value string, opts ...Setting) SubcommandBuilder {
	s.options = s.options.withOption(name, value, opts)
	return s
}

// WithOptions appends each spec in order.
func (s SubcommandBuilder) WithOptions(specs ...OptionSpec) SubcommandBuilder {
	s.options = s.options.withOptions(specs)
	return s
}

// WithRepeatedOption appends the option once per non-empty value.
func (s SubcommandBuilder) WithRepeatedOption(name string, values []string, opts ...Setting) SubcommandBuilder {
	s.options = s.options.withRepeatedOption(name, values, opts)
	return s
}

// WithFlag appends a flag. It is a no-op when flag is empty.
func (s SubcommandBuilder) WithFlag(flag string, opts ...Setting) SubcommandBuilder {
	s.options = s.options.withFlag(flag, opts)
	return s
}

// WithFlags appends each non-empty flag in order.
func (s SubcommandBuilder) WithFlags(flags ...string) SubcommandBuilder {
	s.options = s.options.withFlags(flags)
	return s
}

// WithOptionSeparator sets the default separator for this subcommand's
// options.
func (s SubcommandBuilder) WithOptionSeparator(separator string) SubcommandBuilder {
	s.options = s.options.withSeparator(separator)
	return s
}

// WithOptionQuoting sets the default quoting for this subcommand's options.
func (s SubcommandBuilder) WithOptionQuoting(quoting string) SubcommandBuilder {
	s.options = s.options.withQuoting(quoting)
	return s
}

// WithOptionPlacement sets the default placement for this subcommand's
// options and flags.
func (s SubcommandBuilder) WithOptionPlacement(placement Placement) SubcommandBuilder {
	s.options = s.options.withPlacement(placement)
	return s
}

// WithOptionsAfterCommand places options after the command by default.
func (s SubcommandBuilder) WithOptionsAfterCommand() SubcommandBuilder {
	return s.WithOptionPlacement(AfterCommand)
}

// WithOptionsAfterSubcommands places options after the subcommands by
// default.
func (s SubcommandBuilder) WithOptionsAfterSubcommands() SubcommandBuilder {
	return s.WithOptionPlacement(AfterSubcommands)
}

// WithOptionsAfterArguments places options after the arguments by default.
func (s SubcommandBuilder) WithOptionsAfterArguments() SubcommandBuilder {
	return s.WithOptionPlacement(AfterArguments)
}

// WithAppliable applies a to the subcommand builder. It is a no-op when a is
// nil.
func (s SubcommandBuilder) WithAppliable(a Appliable[SubcommandBuilder]) SubcommandBuilder {
	return apply(s, a)
}

// WithAppliables applies each appliable in order.
func (s SubcommandBuilder) WithAppliables(appliables ...Appliable[SubcommandBuilder]) SubcommandBuilder {
	for _, a := range appliables {
		s = s.WithAppliable(a)
	}
	return s
}

// Build resolves the subcommand using only its own defaults.
func (s SubcommandBuilder) Build() Subcommand {
	return s.build(optionDefaults{})
}

func (s SubcommandBuilder) build(parent optionDefaults) Subcommand {
	return Subcommand{
		name:    s.name,
		options: s.options.build(parent),
	}
}
