package cmdline

import (
	"context"
	"reflect"
	"strings"
)

// CommandLine is an immutable, fully resolved command invocation. It is
// produced by Builder.Build or NewCommandLine and renders itself either as an
// argument vector (Array) or as a quoted display string (String).
//
// The rendering order is:
//
//	[environment] command [options after command] subcommands
//	  [options after subcommands] arguments [options after arguments]
//
// Array omits the environment, which is passed to the executor separately.
type CommandLine struct {
	command              string
	subcommands          []Subcommand
	options              []Switch
	arguments            []Argument
	environmentVariables []EnvironmentVariable
	executor             Executor
	workingDirectory     string
}

// Parts holds the components used to construct a CommandLine directly.
type Parts struct {
	Subcommands          []Subcommand
	Options              []Switch
	Arguments            []Argument
	EnvironmentVariables []EnvironmentVariable

	// Executor runs the command line. When nil, the executor of the
	// process-wide configuration is used.
	Executor Executor

	WorkingDirectory string
}

// NewCommandLine creates a CommandLine from already-resolved parts. Most
// callers should use a Builder instead.
func NewCommandLine(command string, parts Parts) CommandLine {
	executor := parts.Executor
	if executor == nil {
		executor = Configuration().executor()
	}
	return CommandLine{
		command:              command,
		subcommands:          cloneSlice(parts.Subcommands),
		options:              cloneSlice(parts.Options),
		arguments:            cloneSlice(parts.Arguments),
		environmentVariables: cloneSlice(parts.EnvironmentVariables),
		executor:             executor,
		workingDirectory:     parts.WorkingDirectory,
	}
}

// Command returns the command name.
func (c CommandLine) Command() string {
	return c.command
}

// Subcommands returns a copy of the subcommands in insertion order.
func (c CommandLine) Subcommands() []Subcommand {
	return cloneSlice(c.subcommands)
}

// Options returns a copy of the command-level options and flags in insertion
// order.
func (c CommandLine) Options() []Switch {
	return cloneSlice(c.options)
}

// Arguments returns a copy of the positional arguments in insertion order.
func (c CommandLine) Arguments() []Argument {
	return cloneSlice(c.arguments)
}

// EnvironmentVariables returns a copy of the environment variables in
// insertion order.
func (c CommandLine) EnvironmentVariables() []EnvironmentVariable {
	return cloneSlice(c.environmentVariables)
}

// Executor returns the executor the command line is run with.
func (c CommandLine) Executor() Executor {
	return c.executor
}

// WorkingDirectory returns the directory the command is run in. An empty
// string means the current directory of the calling process.
func (c CommandLine) WorkingDirectory() string {
	return c.workingDirectory
}

// Env returns the environment variables as a name to raw value map. Quoting
// is never applied. When a name is declared more than once the last value
// wins.
func (c CommandLine) Env() map[string]string {
	env := make(map[string]string, len(c.environmentVariables))
	for _, v := range c.environmentVariables {
		env[v.name] = v.value
	}
	return env
}

// Environ returns the environment variables as NAME=value pairs in insertion
// order, the format expected by os/exec.
func (c CommandLine) Environ() []string {
	environ := make([]string, 0, len(c.environmentVariables))
	for _, v := range c.environmentVariables {
		environ = append(environ, v.name+"="+v.value)
	}
	return environ
}

// Array returns the argument vector of the command line.
func (c CommandLine) Array() []string {
	var tokens []string
	for _, a := range c.anchors(false) {
		tokens = append(tokens, a.array()...)
	}
	return tokens
}

// String returns the display form of the command line, including the
// environment. Values are quoted but not shell-escaped.
func (c CommandLine) String() string {
	var parts []string
	for _, a := range c.anchors(true) {
		if s := a.string(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Execute runs the command line with its executor.
func (c CommandLine) Execute(ctx context.Context, opts ...ExecuteOption) error {
	executor := c.executor
	if executor == nil {
		executor = Configuration().executor()
	}
	return executor.Execute(ctx, c, newExecuteOptions(opts))
}

// Equal reports whether both command lines were built from the same
// components. Executors are compared by type only.
func (c CommandLine) Equal(other CommandLine) bool {
	if c.command != other.command || c.workingDirectory != other.workingDirectory {
		return false
	}
	if !sameExecutor(c.executor, other.executor) {
		return false
	}
	if len(c.subcommands) != len(other.subcommands) {
		return false
	}
	for i := range c.subcommands {
		if !c.subcommands[i].Equal(other.subcommands[i]) {
			return false
		}
	}
	if len(c.arguments) != len(other.arguments) {
		return false
	}
	for i := range c.arguments {
		if !c.arguments[i].Equal(other.arguments[i]) {
			return false
		}
	}
	return switchesEqual(c.options, other.options) &&
		reflect.DeepEqual(c.environmentVariables, other.environmentVariables)
}

// anchors returns the rendering slots of the command line in order.
func (c CommandLine) anchors(withEnvironment bool) []anchor {
	groups := groupByPlacement(c.options)

	anchors := make([]anchor, 0, 7)
	if withEnvironment {
		anchors = append(anchors, components(c.environmentVariables))
	}
	return append(anchors,
		anchor{token(c.command)},
		components(groups[AfterCommand]),
		components(c.subcommands),
		components(groups[AfterSubcommands]),
		components(c.arguments),
		components(groups[AfterArguments]),
	)
}

// anchor is one rendering slot of a command line.
type anchor []Component

func components[T Component](items []T) anchor {
	a := make(anchor, 0, len(items))
	for _, item := range items {
		a = append(a, item)
	}
	return a
}

func (a anchor) array() []string {
	var tokens []string
	for _, c := range a {
		tokens = append(tokens, c.Array()...)
	}
	return tokens
}

func (a anchor) string() string {
	parts := make([]string, 0, len(a))
	for _, c := range a {
		if s := c.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// token is a bare word such as the command name. An empty token renders
// nothing.
type token string

func (t token) Array() []string {
	if t == "" {
		return nil
	}
	return []string{string(t)}
}

func (t token) String() string {
	return string(t)
}
