package cmdline

import (
	"fmt"
	"reflect"
	"strings"
)

// Component is any part of a command line that can render itself.
// Array never applies quoting; String always does.
type Component interface {
	// Array returns the argument-vector tokens for the component.
	Array() []string

	// String returns the display form of the component.
	String() string
}

// Switch is an Option or a Flag: a component that carries a placement.
type Switch interface {
	Component

	// Placement returns the resolved anchor of the switch.
	Placement() Placement
}

var (
	_ Switch    = Option{}
	_ Switch    = Flag{}
	_ Component = Argument{}
	_ Component = EnvironmentVariable{}
	_ Component = Subcommand{}
)

// Argument is a positional argument. Its value is converted with fmt.Sprint
// when rendered, not when stored.
type Argument struct {
	value any
}

// NewArgument creates an Argument wrapping value.
func NewArgument(value any) Argument {
	return Argument{value: value}
}

// Value returns the wrapped value.
func (a Argument) Value() any {
	return a.value
}

// String returns the stringified value. Pointers are dereferenced unless
// they implement fmt.Stringer or error.
func (a Argument) String() string {
	return fmt.Sprint(indirect(a.value))
}

// indirect follows non-nil pointers to the value they point to.
func indirect(value any) any {
	for {
		switch value.(type) {
		case fmt.Stringer, error:
			return value
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return value
		}
		value = rv.Elem().Interface()
	}
}

// Array returns the stringified value as a single token.
func (a Argument) Array() []string {
	return []string{a.String()}
}

// Equal reports whether both arguments wrap deeply equal values.
func (a Argument) Equal(other Argument) bool {
	return reflect.DeepEqual(a.value, other.value)
}

// Flag is a bare switch such as "-v" or "--force".
type Flag struct {
	flag      string
	placement Placement
}

// NewFlag creates a Flag. Only the placement setting applies to flags.
func NewFlag(flag string, opts ...Setting) Flag {
	_, _, placement := resolve(newSettings(opts), optionDefaults{})
	return Flag{flag: flag, placement: placement}
}

// Flag returns the flag token.
func (f Flag) Flag() string {
	return f.flag
}

// Placement returns the anchor of the flag.
func (f Flag) Placement() Placement {
	return f.placement
}

// String returns the flag token.
func (f Flag) String() string {
	return f.flag
}

// Array returns the flag as a single token.
func (f Flag) Array() []string {
	return []string{f.flag}
}

// Equal reports whether both flags have the same token and placement.
func (f Flag) Equal(other Flag) bool {
	return f == other
}

// Option is a named switch with a value, such as "--output file.txt".
type Option struct {
	name      string
	value     string
	separator string
	quoting   string
	placement Placement
}

// NewOption creates an Option. Unset settings default to a single space
// separator, no quoting and AfterCommand placement.
func NewOption(name, value string, opts ...Setting) Option {
	separator, quoting, placement := resolve(newSettings(opts), optionDefaults{})
	return Option{
		name:      name,
		value:     value,
		separator: separator,
		quoting:   quoting,
		placement: placement,
	}
}

// Name returns the option name.
func (o Option) Name() string {
	return o.name
}

// Value returns the raw option value.
func (o Option) Value() string {
	return o.value
}

// Separator returns the string placed between name and value.
func (o Option) Separator() string {
	return o.separator
}

// Quoting returns the quoting string used by the string form.
func (o Option) Quoting() string {
	return o.quoting
}

// Placement returns the anchor of the option.
func (o Option) Placement() Placement {
	return o.placement
}

// String returns "name<separator><quoted value>".
func (o Option) String() string {
	return o.name + o.separator + quote(o.value, o.quoting)
}

// Array returns two tokens when the separator is a single space and one
// joined token otherwise. Quoting is never applied.
func (o Option) Array() []string {
	if o.separator == DefaultSeparator {
		return []string{o.name, o.value}
	}
	return []string{o.name + o.separator + o.value}
}

// Equal reports whether both options were constructed from the same fields.
func (o Option) Equal(other Option) bool {
	return o == other
}

// EnvironmentVariable is a variable set in the environment of the executed
// command.
type EnvironmentVariable struct {
	name    string
	value   string
	quoting string
}

// NewEnvironmentVariable creates an EnvironmentVariable. Only the quoting
// setting applies; it defaults to a double quote.
func NewEnvironmentVariable(name, value string, opts ...Setting) EnvironmentVariable {
	s := newSettings(opts)
	return EnvironmentVariable{
		name:    name,
		value:   value,
		quoting: firstString(s.quoting, nil, DefaultEnvironmentQuoting),
	}
}

// Name returns the variable name.
func (e EnvironmentVariable) Name() string {
	return e.name
}

// Value returns the raw, unquoted value.
func (e EnvironmentVariable) Value() string {
	return e.value
}

// Quoting returns the quoting string used by the string form.
func (e EnvironmentVariable) Quoting() string {
	return e.quoting
}

// String returns NAME="value" with the configured quoting.
func (e EnvironmentVariable) String() string {
	return e.name + "=" + quote(e.value, e.quoting)
}

// Array returns the raw name/value pair.
func (e EnvironmentVariable) Array() []string {
	return []string{e.name, e.value}
}

// Equal reports whether both variables were constructed from the same fields.
func (e EnvironmentVariable) Equal(other EnvironmentVariable) bool {
	return e == other
}

// Subcommand is a subcommand name followed by its own options. Its options
// always render directly after the name, in insertion order.
type Subcommand struct {
	name    string
	options []Switch
}

// NewSubcommand creates a Subcommand with the given options.
func NewSubcommand(name string, options ...Switch) Subcommand {
	return Subcommand{name: name, options: cloneSlice(options)}
}

// Name returns the subcommand name.
func (s Subcommand) Name() string {
	return s.name
}

// Options returns a copy of the subcommand's options.
func (s Subcommand) Options() []Switch {
	return cloneSlice(s.options)
}

// String returns the name followed by the string form of each option.
func (s Subcommand) String() string {
	parts := make([]string, 0, len(s.options)+1)
	if s.name != "" {
		parts = append(parts, s.name)
	}
	for _, o := range s.options {
		if str := o.String(); str != "" {
			parts = append(parts, str)
		}
	}
	return strings.Join(parts, " ")
}

// Array returns the name followed by the tokens of each option.
func (s Subcommand) Array() []string {
	tokens := make([]string, 0, len(s.options)*2+1)
	if s.name != "" {
		tokens = append(tokens, s.name)
	}
	for _, o := range s.options {
		tokens = append(tokens, o.Array()...)
	}
	return tokens
}

// Equal reports whether both subcommands have the same name and options.
func (s Subcommand) Equal(other Subcommand) bool {
	return s.name == other.name && switchesEqual(s.options, other.options)
}

// switchesEqual compares two switch lists element-wise by type and fields.
func switchesEqual(a, b []Switch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
