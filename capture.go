package cmdline

import (
	"context"
	"io"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
)

var _ Executor = (*CapturingExecutor)(nil)

// CapturingExecutor runs command lines through an exec.Executor, which
// captures the complete output of the process. The captured output is
// written to the execution's writers once the process has exited.
//
// Use it when output must not interleave with other writers, for example when
// several commands run concurrently. Standard input is not supported.
type CapturingExecutor struct {
	base exec.Executor
}

// NewCapturingExecutor creates a CapturingExecutor backed by exec.New. The
// child inherits the parent's environment; opts are passed through to
// exec.New and may add global settings such as exec.WithDisableColors.
func NewCapturingExecutor(opts ...exec.Option) *CapturingExecutor {
	opts = append([]exec.Option{exec.WithInheritEnv()}, opts...)
	return &CapturingExecutor{base: exec.New(opts...)}
}

// NewCapturingExecutorFrom creates a CapturingExecutor backed by an existing
// exec.Executor. The executor is cloned for every execution.
func NewCapturingExecutorFrom(executor exec.Executor) *CapturingExecutor {
	return &CapturingExecutor{base: executor}
}

// Execute runs the command line and replays its output into opts.Stdout and
// opts.Stderr, defaulting to the parent's streams.
func (c *CapturingExecutor) Execute(ctx context.Context, commandLine CommandLine, opts ExecuteOptions) error {
	rendered := commandLine.String()

	if opts.Stdin != nil {
		return errors.WithContext(
			errors.New(errors.CodeNotImplemented, "capturing executor does not support standard input"),
			"command_line", rendered,
		)
	}

	args := commandLine.Array()
	if len(args) == 0 {
		return errEmptyCommandLine(rendered)
	}

	runner := c.base.Clone().WithContext(ctx)
	if env := commandLine.Env(); len(env) > 0 {
		runner = runner.WithEnv(env)
	}
	if dir := commandLine.WorkingDirectory(); dir != "" {
		runner = runner.WithDir(dir)
	}

	result, err := runner.Run(args...)
	if result != nil {
		if werr := replay(opts.Stdout, os.Stdout, result.Stdout); werr != nil {
			return errors.Wrap(werr, errors.CodeExecutionFailed, "failed to write standard output")
		}
		if werr := replay(opts.Stderr, os.Stderr, result.Stderr); werr != nil {
			return errors.Wrap(werr, errors.CodeExecutionFailed, "failed to write standard error")
		}
	}

	if err != nil {
		return mapExecError(err, rendered)
	}

	return nil
}

// mapExecError converts an exec.ExecError into an ExecutionError, or into a
// launch error when the process never started.
func mapExecError(err error, rendered string) error {
	var launchErr *osexec.Error
	if errors.As(err, &launchErr) {
		return wrapLaunchError(err, rendered)
	}

	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed to run command", map[string]interface{}{
			"command_line": rendered,
		})
	}

	return &ExecutionError{
		CommandLine: rendered,
		ExitCode:    execErr.ExitCode,
		Stderr:      execErr.Stderr,
		Err:         err,
	}
}

func replay(w, fallback io.Writer, output string) error {
	if output == "" {
		return nil
	}
	if w == nil {
		w = fallback
	}
	_, err := io.WriteString(w, output)
	return err
}
