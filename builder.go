package cmdline

import (
	"slices"
	"sort"
)

// Builder accumulates the components of a command line. It is an immutable
// value: every With method returns a new Builder and leaves the receiver
// untouched, so a partially configured Builder can be shared and extended
// from several places, including concurrently.
//
// Absent values are absorbed: passing an empty option value, an empty flag,
// a nil argument or an empty subcommand name returns an equivalent Builder.
// This allows optional values to be chained without guarding each one.
type Builder struct {
	command          string
	options          optionState
	arguments        []Argument
	subcommands      []SubcommandBuilder
	environment      []EnvironmentVariable
	executor         Executor
	workingDirectory string
}

// WithOption appends an option. It is a no-op when value is empty.
func (b Builder) WithOption(name, value string, opts ...Setting) Builder {
	b.options = b.options.withOption(name, value, opts)
	return b
}

// WithOptions appends each spec in order.
func (b Builder) WithOptions(specs ...OptionSpec) Builder {
	b.options = b.options.withOptions(specs)
	return b
}

// WithRepeatedOption appends the option once for every non-empty value.
func (b Builder) WithRepeatedOption(name string, values []string, opts ...Setting) Builder {
	b.options = b.options.withRepeatedOption(name, values, opts)
	return b
}

// WithFlag appends a flag. It is a no-op when flag is empty.
func (b Builder) WithFlag(flag string, opts ...Setting) Builder {
	b.options = b.options.withFlag(flag, opts)
	return b
}

// WithFlags appends each non-empty flag in order.
func (b Builder) WithFlags(flags ...string) Builder {
	b.options = b.options.withFlags(flags)
	return b
}

// WithOptionSeparator sets the separator used by options that do not specify
// their own. An empty separator is ignored.
func (b Builder) WithOptionSeparator(separator string) Builder {
	b.options = b.options.withSeparator(separator)
	return b
}

// WithOptionQuoting sets the quoting used by options that do not specify
// their own. An empty quoting string is ignored.
func (b Builder) WithOptionQuoting(quoting string) Builder {
	b.options = b.options.withQuoting(quoting)
	return b
}

// WithOptionPlacement sets the placement used by options and flags that do
// not specify their own. Unknown placements are ignored.
func (b Builder) WithOptionPlacement(placement Placement) Builder {
	b.options = b.options.withPlacement(placement)
	return b
}

// WithOptionsAfterCommand places options after the command by default.
func (b Builder) WithOptionsAfterCommand() Builder {
	return b.WithOptionPlacement(AfterCommand)
}

// WithOptionsAfterSubcommands places options after the subcommands by
// default.
func (b Builder) WithOptionsAfterSubcommands() Builder {
	return b.WithOptionPlacement(AfterSubcommands)
}

// WithOptionsAfterArguments places options after the arguments by default.
func (b Builder) WithOptionsAfterArguments() Builder {
	return b.WithOptionPlacement(AfterArguments)
}

// WithArgument appends a positional argument. Numbers, booleans and other
// values are accepted and converted with fmt.Sprint when rendered. It is a
// no-op when value is nil, including a typed nil pointer, map or slice, or
// when it stringifies to the empty string.
func (b Builder) WithArgument(value any) Builder {
	if isNil(value) || NewArgument(value).String() == "" {
		return b
	}
	b.arguments = append(slices.Clip(b.arguments), NewArgument(value))
	return b
}

// WithArguments appends each argument in order. Use Args to pass a typed
// slice.
func (b Builder) WithArguments(values ...any) Builder {
	for _, v := range values {
		b = b.WithArgument(v)
	}
	return b
}

// WithSubcommand appends a subcommand. Each configurator receives the
// subcommand's builder in turn and returns the configured builder.
// It is a no-op when name is empty.
func (b Builder) WithSubcommand(name string, configure ...SubcommandConfigurator) Builder {
	if name == "" {
		return b
	}
	sub := NewSubcommandBuilder(name)
	for _, fn := range configure {
		if fn != nil {
			sub = fn(sub)
		}
	}
	b.subcommands = append(slices.Clip(b.subcommands), sub)
	return b
}

// WithSubcommands appends each subcommand in order. The configurators are
// applied to the last subcommand only; the others are added bare.
func (b Builder) WithSubcommands(names []string, configure ...SubcommandConfigurator) Builder {
	if len(names) == 0 {
		return b
	}
	last := len(names) - 1
	for _, name := range names[:last] {
		b = b.WithSubcommand(name)
	}
	return b.WithSubcommand(names[last], configure...)
}

// WithEnvironmentVariable appends an environment variable with the default
// quoting. It is a no-op when name is empty; an empty value is kept.
func (b Builder) WithEnvironmentVariable(name, value string) Builder {
	return b.WithEnvironmentVariables(NewEnvironmentVariable(name, value))
}

// WithEnvironmentVariables appends each variable in order, skipping those
// without a name.
func (b Builder) WithEnvironmentVariables(vars ...EnvironmentVariable) Builder {
	for _, v := range vars {
		if v.name == "" {
			continue
		}
		b.environment = append(slices.Clip(b.environment), v)
	}
	return b
}

// WithEnvironment appends every entry of env. Entries are sorted by name so
// that rendering is deterministic.
func (b Builder) WithEnvironment(env map[string]string) Builder {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b = b.WithEnvironmentVariable(name, env[name])
	}
	return b
}

// WithAppliable applies a to the builder. It is a no-op when a is nil.
func (b Builder) WithAppliable(a Appliable[Builder]) Builder {
	return apply(b, a)
}

// WithAppliables applies each appliable in order.
func (b Builder) WithAppliables(appliables ...Appliable[Builder]) Builder {
	for _, a := range appliables {
		b = b.WithAppliable(a)
	}
	return b
}

// WithExecutor sets the executor carried into the built command line. It is
// a no-op when executor is nil.
func (b Builder) WithExecutor(executor Executor) Builder {
	if executor == nil {
		return b
	}
	b.executor = executor
	return b
}

// WithWorkingDirectory sets the directory the command runs in. It is a no-op
// when dir is empty.
func (b Builder) WithWorkingDirectory(dir string) Builder {
	if dir == "" {
		return b
	}
	b.workingDirectory = dir
	return b
}

// Build resolves the accumulated state into a CommandLine. Build is pure:
// calling it repeatedly yields equal command lines.
//
// Each option's separator, quoting and placement come from its own settings
// when given, otherwise from the builder defaults, otherwise from
// DefaultSeparator, no quoting and DefaultPlacement.
func (b Builder) Build() CommandLine {
	executor := b.executor
	if executor == nil {
		executor = Configuration().executor()
	}

	var subcommands []Subcommand
	for _, sub := range b.subcommands {
		subcommands = append(subcommands, sub.build(b.options.defaults))
	}

	return CommandLine{
		command:              b.command,
		subcommands:          subcommands,
		options:              b.options.build(optionDefaults{}),
		arguments:            cloneSlice(b.arguments),
		environmentVariables: cloneSlice(b.environment),
		executor:             executor,
		workingDirectory:     b.workingDirectory,
	}
}
