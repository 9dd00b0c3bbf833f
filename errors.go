package cmdline

import (
	"fmt"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
)

var _ errors.PlatformError = (*ExecutionError)(nil)

// ExecutionError is returned by an Executor when the command it ran exited
// with a non-zero exit code. It implements errors.PlatformError with
// errors.CodeExecutionFailed.
type ExecutionError struct {
	// CommandLine is the string form of the command line that was run
	CommandLine string

	// ExitCode is the exit code returned by the command, or -1 when the
	// command was terminated by a signal
	ExitCode int

	// Stderr holds the tail of the command's standard error, when captured
	Stderr string

	// Err is the underlying error from the execution, if any
	Err error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed with exit code %d: %v", e.CommandLine, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", e.CommandLine, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Code returns errors.CodeExecutionFailed.
func (e *ExecutionError) Code() errors.ErrorCode {
	return errors.CodeExecutionFailed
}

// Classification returns errors.ClassificationPermanent. Executors never
// retry.
func (e *ExecutionError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns a short human-readable description.
func (e *ExecutionError) Message() string {
	return "failed while executing command line"
}

// Context returns the command line and exit code.
func (e *ExecutionError) Context() map[string]interface{} {
	return map[string]interface{}{
		"command_line": e.CommandLine,
		"exit_code":    e.ExitCode,
	}
}

// errEmptyCommandLine is returned when a command line renders to no tokens.
func errEmptyCommandLine(commandLine string) errors.PlatformError {
	return errors.WithContext(
		errors.New(errors.CodeInvalidInput, "command line renders to an empty argument vector"),
		"command_line", commandLine,
	)
}

// wrapLaunchError wraps a failure to start a process. A missing executable
// maps to errors.CodeNotFound; everything else to errors.CodeExecutionFailed.
func wrapLaunchError(err error, commandLine string) errors.PlatformError {
	code := errors.CodeExecutionFailed
	if errors.Is(err, osexec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		code = errors.CodeNotFound
	}
	return errors.WrapWithContext(err, code, "failed to start command", map[string]interface{}{
		"command_line": commandLine,
	})
}
