package cmdline

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockExecutor_RoundTrip(t *testing.T) {
	mock := NewMockExecutor()
	mock.SetStdout("hello\n")
	mock.SetStderr("warning\n")

	cl := Config{Executor: mock}.BuilderForCommand("echo").WithArgument("hello").Build()

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("input")
	err := cl.Execute(context.Background(), WithStdin(stdin), WithStdout(&stdout), WithStderr(&stderr))
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].CommandLine.Equal(cl))
	assert.Same(t, stdin, calls[0].Options.Stdin)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "warning\n", stderr.String())
}

func TestMockExecutor_ExitCode(t *testing.T) {
	mock := NewMockExecutor()
	mock.SetExitCode(2)
	mock.SetStderr("boom")
	assert.Equal(t, 2, mock.ExitCode())

	cl := Config{Executor: mock}.BuilderForCommand("false").Build()
	err := cl.Execute(context.Background())
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 2, execErr.ExitCode)
	assert.Equal(t, "false", execErr.CommandLine)
	assert.Equal(t, "boom", execErr.Stderr)
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 2, calls[0].ExitCode)
}

func TestMockExecutor_NilWriters(t *testing.T) {
	mock := NewMockExecutor()
	mock.SetStdout("ignored")

	err := Config{Executor: mock}.BuilderForCommand("ls").Build().Execute(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mock.Calls(), 1)
}

func TestMockExecutor_Reset(t *testing.T) {
	mock := NewMockExecutor()
	mock.SetExitCode(1)
	mock.SetStdout("x")

	_ = Config{Executor: mock}.BuilderForCommand("ls").Build().Execute(context.Background())
	require.Len(t, mock.Calls(), 1)

	mock.Reset()
	assert.Empty(t, mock.Calls())
	assert.Equal(t, 0, mock.ExitCode())

	var stdout bytes.Buffer
	err := Config{Executor: mock}.BuilderForCommand("ls").Build().Execute(context.Background(), WithStdout(&stdout))
	assert.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestMockExecutor_CallsIsCopy(t *testing.T) {
	mock := NewMockExecutor()
	_ = Config{Executor: mock}.BuilderForCommand("ls").Build().Execute(context.Background())

	calls := mock.Calls()
	calls[0].ExitCode = 99
	assert.Equal(t, 0, mock.Calls()[0].ExitCode)
}

func TestMockExecutor_Concurrent(t *testing.T) {
	mock := NewMockExecutor()
	b := Config{Executor: mock}.BuilderForCommand("ls")

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = b.WithArgument(i).Build().Execute(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Len(t, mock.Calls(), 25)
}
