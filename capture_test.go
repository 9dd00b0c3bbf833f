package cmdline

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureBuilder(command string, opts ...exec.Option) Builder {
	return Config{Executor: NewCapturingExecutor(opts...)}.BuilderForCommand(command)
}

func TestCapturingExecutor_Output(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cl := captureBuilder("sh").
		WithFlag("-c").
		WithArgument("echo out; echo err >&2").
		Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout), WithStderr(&stderr)))
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestCapturingExecutor_EnvironmentAndDirectory(t *testing.T) {
	t.Setenv("CMDLINE_TEST_PARENT", "inherited")

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	var stdout bytes.Buffer
	cl := captureBuilder("sh").
		WithFlag("-c").
		WithArgument(`printf '%s %s %s' "$CMDLINE_TEST_PARENT" "$CHILD" "$(pwd)"`).
		WithEnvironmentVariable("CHILD", "set").
		WithWorkingDirectory(dir).
		Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, "inherited set "+dir, stdout.String())
}

func TestCapturingExecutor_GlobalOptions(t *testing.T) {
	var stdout bytes.Buffer
	cl := captureBuilder("sh", exec.WithDisableColors()).
		WithFlag("-c").
		WithArgument(`printf '%s' "$NO_COLOR"`).
		Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, "1", stdout.String())
}

func TestCapturingExecutor_NonZeroExit(t *testing.T) {
	var stderr bytes.Buffer
	cl := captureBuilder("sh").WithFlag("-c").WithArgument("echo bad >&2; exit 4").Build()

	err := cl.Execute(context.Background(), WithStderr(&stderr))
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 4, execErr.ExitCode)
	assert.Equal(t, "bad\n", execErr.Stderr)
	assert.Equal(t, "bad\n", stderr.String())

	var runErr *exec.ExecError
	assert.ErrorAs(t, err, &runErr)
}

func TestCapturingExecutor_NotFound(t *testing.T) {
	err := captureBuilder("cmdline-test-missing-binary").Build().Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestCapturingExecutor_StdinUnsupported(t *testing.T) {
	cl := captureBuilder("cat").Build()

	err := cl.Execute(context.Background(), WithStdin(strings.NewReader("x")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotImplemented, errors.GetCode(err))
}

func TestCapturingExecutor_EmptyCommandLine(t *testing.T) {
	err := captureBuilder("").Build().Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCapturingExecutor_From(t *testing.T) {
	var stdout bytes.Buffer
	base := exec.New(exec.WithEnv(map[string]string{"FROM_BASE": "yes"}))
	cl := Config{Executor: NewCapturingExecutorFrom(base)}.
		BuilderForCommand("sh").
		WithFlag("-c").
		WithArgument(`printf '%s' "$FROM_BASE"`).
		Build()

	require.NoError(t, cl.Execute(context.Background(), WithStdout(&stdout)))
	assert.Equal(t, "yes", stdout.String())
}
