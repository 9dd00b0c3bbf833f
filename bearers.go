package cmdline

import "reflect"

// OptionBearer is implemented by builders that accumulate options and flags.
// B is the concrete builder type returned by every method.
type OptionBearer[B any] interface {
	// WithOption appends an option. It is a no-op when value is empty.
	WithOption(name, value string, opts ...Setting) B

	// WithOptions appends each spec in order.
	WithOptions(specs ...OptionSpec) B

	// WithRepeatedOption appends the option once per non-empty value.
	WithRepeatedOption(name string, values []string, opts ...Setting) B

	// WithFlag appends a flag. It is a no-op when flag is empty.
	WithFlag(flag string, opts ...Setting) B

	// WithFlags appends each non-empty flag in order.
	WithFlags(flags ...string) B

	// WithOptionSeparator sets the default separator for options that do
	// not specify one.
	WithOptionSeparator(separator string) B

	// WithOptionQuoting sets the default quoting for options that do not
	// specify one.
	WithOptionQuoting(quoting string) B

	// WithOptionPlacement sets the default placement for options and flags
	// that do not specify one.
	WithOptionPlacement(placement Placement) B

	// WithOptionsAfterCommand places options after the command by default.
	WithOptionsAfterCommand() B
	// WithOptionsAfterSubcommands places options after the subcommands by
	// default.
	WithOptionsAfterSubcommands() B
	// WithOptionsAfterArguments places options after the arguments by default.
	WithOptionsAfterArguments() B
}

// ArgumentBearer is implemented by builders that accumulate positional
// arguments.
type ArgumentBearer[B any] interface {
	// WithArgument appends an argument unless it is nil or stringifies to
	// the empty string.
	WithArgument(value any) B

	// WithArguments appends each argument in order.
	WithArguments(values ...any) B
}

// SubcommandBearer is implemented by builders that accumulate subcommands.
type SubcommandBearer[B any] interface {
	// WithSubcommand appends a subcommand configured by configure.
	WithSubcommand(name string, configure ...SubcommandConfigurator) B

	// WithSubcommands appends each subcommand in order. The configurators
	// apply to the last subcommand only.
	WithSubcommands(names []string, configure ...SubcommandConfigurator) B
}

// EnvBearer is implemented by builders that accumulate environment
// variables.
type EnvBearer[B any] interface {
	// WithEnvironmentVariable appends a variable. It is a no-op when name is
	// empty.
	WithEnvironmentVariable(name, value string) B

	// WithEnvironmentVariables appends each variable in order.
	WithEnvironmentVariables(vars ...EnvironmentVariable) B

	// WithEnvironment appends every entry of env, sorted by name.
	WithEnvironment(env map[string]string) B
}

var (
	_ OptionBearer[Builder]     = Builder{}
	_ ArgumentBearer[Builder]   = Builder{}
	_ SubcommandBearer[Builder] = Builder{}
	_ EnvBearer[Builder]        = Builder{}

	_ OptionBearer[SubcommandBuilder] = SubcommandBuilder{}
)

// Appliable packages a reusable transformation of a builder. Any type with an
// Apply method can be passed to WithAppliable.
type Appliable[B any] interface {
	Apply(builder B) B
}

// AppliableFunc adapts an ordinary function to the Appliable interface.
type AppliableFunc[B any] func(builder B) B

// Apply calls f(builder).
func (f AppliableFunc[B]) Apply(builder B) B {
	return f(builder)
}

// apply runs a against builder, treating nil appliables as no-ops. This
// includes a nil AppliableFunc and a nil pointer to an Appliable type.
func apply[B any](builder B, a Appliable[B]) B {
	if isNil(a) {
		return builder
	}
	return a.Apply(builder)
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// OptionSpec describes one option for WithOptions.
type OptionSpec struct {
	Name     string
	Value    string
	Settings []Setting
}

// Args converts a typed slice into the []any accepted by WithArguments.
func Args[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
