package cmdline

import (
	"context"
	"io"
	"reflect"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor turns a CommandLine into an invocation. Implementations decide
// whether that means spawning a process, capturing output, or recording the
// call for a test.
type Executor interface {
	// Execute runs the command line and blocks until it completes.
	// It returns an *ExecutionError when the command exits with a non-zero
	// exit code.
	Execute(ctx context.Context, commandLine CommandLine, opts ExecuteOptions) error
}

// ExecuteOptions carries the streams of a single execution. Streams are
// borrowed; executors never close them.
type ExecuteOptions struct {
	// Stdin is read and written to the command's standard input. A nil
	// reader gives the command an empty standard input.
	Stdin io.Reader

	// Stdout receives the command's standard output. A nil writer means the
	// executor's default, normally the parent's standard output.
	Stdout io.Writer

	// Stderr receives the command's standard error. A nil writer means the
	// executor's default, normally the parent's standard error.
	Stderr io.Writer
}

// ExecuteOption configures a single call to CommandLine.Execute.
type ExecuteOption func(*ExecuteOptions)

// WithStdin returns an ExecuteOption that feeds r to the command's standard
// input.
func WithStdin(r io.Reader) ExecuteOption {
	return func(o *ExecuteOptions) {
		o.Stdin = r
	}
}

// WithStdout returns an ExecuteOption that sends standard output to w.
func WithStdout(w io.Writer) ExecuteOption {
	return func(o *ExecuteOptions) {
		o.Stdout = w
	}
}

// WithStderr returns an ExecuteOption that sends standard error to w.
func WithStderr(w io.Writer) ExecuteOption {
	return func(o *ExecuteOptions) {
		o.Stderr = w
	}
}

func newExecuteOptions(opts []ExecuteOption) ExecuteOptions {
	var o ExecuteOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// sameExecutor reports whether two executors are of the same concrete type.
// Executors carry configuration, not identity, so two executors of one type
// are considered interchangeable when comparing command lines.
func sameExecutor(a, b Executor) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}
