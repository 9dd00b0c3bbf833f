package cmdline

import (
	"context"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
)

var _ Executor = (*ProcessExecutor)(nil)

// colorEnv disables colored output in most tools.
var colorEnv = []string{
	"NO_COLOR=1",
	"TERM=dumb",
	"CLICOLOR=0",
	"CLICOLOR_FORCE=0",
	"FORCE_COLOR=0",
}

// ProcessExecutor runs command lines as child processes using os/exec.
//
// The argument vector comes from CommandLine.Array, so no shell is involved
// and string-form quoting never reaches the process. The child inherits the
// parent's environment, overlaid with the command line's environment
// variables, unless WithIsolatedEnvironment is set.
type ProcessExecutor struct {
	isolated      bool
	disableColors bool
	stdout        io.Writer
	stderr        io.Writer
	logger        *slog.Logger
}

// ProcessOption configures a ProcessExecutor.
type ProcessOption func(*ProcessExecutor)

// NewProcessExecutor creates a ProcessExecutor with the given options.
func NewProcessExecutor(opts ...ProcessOption) *ProcessExecutor {
	p := &ProcessExecutor{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithIsolatedEnvironment returns a ProcessOption that starts children with
// only the command line's environment variables.
func WithIsolatedEnvironment() ProcessOption {
	return func(p *ProcessExecutor) {
		p.isolated = true
	}
}

// WithDisableColors returns a ProcessOption that sets NO_COLOR=1, TERM=dumb
// and related variables for every child. Variables declared on the command
// line take precedence.
func WithDisableColors() ProcessOption {
	return func(p *ProcessExecutor) {
		p.disableColors = true
	}
}

// WithLogger returns a ProcessOption that sets the logger used for debug
// output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) ProcessOption {
	return func(p *ProcessExecutor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDefaultStdout returns a ProcessOption that sets the writer used when an
// execution does not supply its own standard output.
func WithDefaultStdout(w io.Writer) ProcessOption {
	return func(p *ProcessExecutor) {
		p.stdout = w
	}
}

// WithDefaultStderr returns a ProcessOption that sets the writer used when an
// execution does not supply its own standard error.
func WithDefaultStderr(w io.Writer) ProcessOption {
	return func(p *ProcessExecutor) {
		p.stderr = w
	}
}

// Execute starts the command line as a child process and waits for it to
// exit. Standard input is copied from opts.Stdin and the pipe is closed once
// the reader is drained. A non-zero exit returns an *ExecutionError carrying
// the tail of standard error.
func (p *ProcessExecutor) Execute(ctx context.Context, commandLine CommandLine, opts ExecuteOptions) error {
	rendered := commandLine.String()

	args := commandLine.Array()
	if len(args) == 0 {
		return errEmptyCommandLine(rendered)
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = commandLine.WorkingDirectory()
	cmd.Env = p.environ(commandLine)
	cmd.Stdin = opts.Stdin

	stdout := opts.Stdout
	if stdout == nil {
		stdout = p.stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = p.stderr
	}

	capture := newTailCapture(stderrCaptureLimit)
	cmd.Stdout = stdout
	cmd.Stderr = teeWriter(stderr, capture)

	p.logger.DebugContext(ctx, "executing command line",
		"command_line", rendered,
		"dir", cmd.Dir,
	)

	if err := cmd.Start(); err != nil {
		return wrapLaunchError(err, rendered)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecutionError{
				CommandLine: rendered,
				ExitCode:    exitErr.ExitCode(),
				Stderr:      capture.String(),
				Err:         err,
			}
		}
		return errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed waiting for command", map[string]interface{}{
			"command_line": rendered,
		})
	}

	p.logger.DebugContext(ctx, "command line completed", "command_line", rendered)

	return nil
}

// environ builds the child environment. os/exec keeps the last value of a
// duplicated key, so later entries override earlier ones.
func (p *ProcessExecutor) environ(commandLine CommandLine) []string {
	env := []string{}
	if !p.isolated {
		env = append(env, os.Environ()...)
	}
	if p.disableColors {
		env = append(env, colorEnv...)
	}
	return append(env, commandLine.Environ()...)
}
