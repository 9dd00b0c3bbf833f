package cmdline

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processBuilder(command string, opts ...ProcessOption) Builder {
	return Config{Executor: NewProcessExecutor(opts...)}.BuilderForCommand(command)
}

func shell(script string, opts ...ProcessOption) Builder {
	return processBuilder("sh", opts...).WithFlag("-c").WithArgument(script)
}

func TestProcessExecutor_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	cl := processBuilder("echo").WithArguments("hello", "world").Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestProcessExecutor_ArrayFormIsNotQuoted(t *testing.T) {
	var stdout bytes.Buffer
	cl := processBuilder("printf").
		WithOptionQuoting(`"`).
		WithArgument("%s|%s").
		WithOption("--msg", "two words", WithPlacement(AfterArguments)).
		Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, "--msg|two words", stdout.String())
}

func TestProcessExecutor_Stdin(t *testing.T) {
	var stdout bytes.Buffer
	cl := processBuilder("cat").Build()

	err := cl.Execute(context.Background(),
		WithStdin(strings.NewReader("from stdin")),
		WithStdout(&stdout),
	)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", stdout.String())
}

func TestProcessExecutor_EmptyStdin(t *testing.T) {
	var stdout bytes.Buffer
	cl := processBuilder("cat").Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Empty(t, stdout.String())
}

func TestProcessExecutor_Environment(t *testing.T) {
	t.Setenv("CMDLINE_TEST_PARENT", "inherited")

	t.Run("inherits and overlays", func(t *testing.T) {
		var stdout bytes.Buffer
		cl := shell(`printf '%s %s' "$CMDLINE_TEST_PARENT" "$CMDLINE_TEST_CHILD"`).
			WithEnvironmentVariable("CMDLINE_TEST_CHILD", `has "quotes"`).
			Build()

		require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
		assert.Equal(t, `inherited has "quotes"`, stdout.String())
	})

	t.Run("command line overrides parent", func(t *testing.T) {
		var stdout bytes.Buffer
		cl := shell(`printf '%s' "$CMDLINE_TEST_PARENT"`).
			WithEnvironmentVariable("CMDLINE_TEST_PARENT", "overridden").
			Build()

		require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
		assert.Equal(t, "overridden", stdout.String())
	})

	t.Run("isolated", func(t *testing.T) {
		var stdout bytes.Buffer
		cl := shell(`printf '%s|%s' "${CMDLINE_TEST_PARENT:-unset}" "$ONLY"`, WithIsolatedEnvironment()).
			WithEnvironmentVariable("ONLY", "mine").
			Build()

		require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
		assert.Equal(t, "unset|mine", stdout.String())
	})

	t.Run("disable colors", func(t *testing.T) {
		var stdout bytes.Buffer
		cl := shell(`printf '%s %s' "$NO_COLOR" "$TERM"`, WithDisableColors()).
			WithEnvironmentVariable("TERM", "xterm").
			Build()

		require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
		assert.Equal(t, "1 xterm", stdout.String())
	})
}

func TestProcessExecutor_WorkingDirectory(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	var stdout bytes.Buffer
	cl := processBuilder("pwd").WithWorkingDirectory(dir).Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, dir, strings.TrimSpace(stdout.String()))
}

func TestProcessExecutor_NonZeroExit(t *testing.T) {
	var stderr bytes.Buffer
	cl := shell("echo oops >&2; exit 3").Build()

	err := cl.Execute(context.Background(), WithStderr(&stderr))
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 3, execErr.ExitCode)
	assert.Equal(t, "oops\n", execErr.Stderr)
	assert.Equal(t, cl.String(), execErr.CommandLine)
	assert.Equal(t, "oops\n", stderr.String())
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
}

func TestProcessExecutor_NotFound(t *testing.T) {
	cl := processBuilder("cmdline-test-missing-binary").Build()

	err := cl.Execute(context.Background())
	require.Error(t, err)

	var execErr *ExecutionError
	assert.False(t, errors.As(err, &execErr))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestProcessExecutor_EmptyCommandLine(t *testing.T) {
	cl := processBuilder("").Build()

	err := cl.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestProcessExecutor_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := processBuilder("sleep").WithArgument(5).Build().Execute(ctx)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, -1, execErr.ExitCode)
}

func TestProcessExecutor_Defaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cl := shell("echo out; echo err >&2",
		WithDefaultStdout(&stdout),
		WithDefaultStderr(&stderr),
	).Build()

	require.NoError(t, cl.Execute(context.Background()))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())

	// Per-execution writers take precedence.
	var override bytes.Buffer
	require.NoError(t, cl.Execute(context.Background(), WithStdout(&override)))
	assert.Equal(t, "out\n", override.String())
	assert.Equal(t, "out\n", stdout.String())
}

func TestProcessExecutor_Logger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cl := processBuilder("true", WithLogger(logger), WithLogger(nil)).Build()
	require.NoError(t, cl.Execute(context.Background()))

	assert.Contains(t, logs.String(), "executing command line")
	assert.Contains(t, logs.String(), "command_line=true")
}
