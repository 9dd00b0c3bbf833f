package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/cmdline"
)

const greetProfile = `command: echo
options:
  - name: --greeting
    value: hello world
    quoting: "'"
arguments:
  - bob
environment:
  - name: LANG
    value: C
`

func newTestApp(t *testing.T, executor cmdline.Executor) *App {
	t.Helper()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "greet.yaml", []byte(greetProfile), 0o644))

	cfg := cmdline.Config{Executor: executor}
	return &App{FS: fs, Config: &cfg}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default string form",
			args: []string{"render", "greet.yaml"},
			want: "LANG=\"C\" echo --greeting 'hello world' bob\n",
		},
		{
			name: "array form",
			args: []string{"render", "greet.yaml", "--format", "array"},
			want: "echo\n--greeting\nhello world\nbob\n",
		},
		{
			name: "json form",
			args: []string{"render", "-f", "json", "greet.yaml"},
			want: `["echo","--greeting","hello world","bob"]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, cmdline.NewMockExecutor())
			out, err := execute(t, app, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	app := newTestApp(t, cmdline.NewMockExecutor())

	_, err := execute(t, app, "render", "greet.yaml", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, app, "render", "missing.yaml")
	assert.Error(t, err)

	_, err = execute(t, app, "render")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	mock := cmdline.NewMockExecutor()
	mock.SetStdout("hello world bob\n")
	app := newTestApp(t, mock)

	out, err := execute(t, app, "run", "greet.yaml",
		"--extra", `--verbose "two words"`,
		"--dir", "/tmp",
		"-e", "FOO=bar",
		"--env", "EMPTY=",
	)
	require.NoError(t, err)
	assert.Equal(t, "hello world bob\n", out)

	calls := mock.Calls()
	require.Len(t, calls, 1)

	cl := calls[0].CommandLine
	assert.Equal(t, []string{"echo", "--greeting", "hello world", "bob", "--verbose", "two words"}, cl.Array())
	assert.Equal(t, "/tmp", cl.WorkingDirectory())
	assert.Equal(t, map[string]string{"LANG": "C", "FOO": "bar", "EMPTY": ""}, cl.Env())
	assert.Nil(t, calls[0].Options.Stdin)
}

func TestRun_Stdin(t *testing.T) {
	mock := cmdline.NewMockExecutor()
	app := newTestApp(t, mock)

	_, err := execute(t, app, "run", "greet.yaml", "--stdin")
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.NotNil(t, calls[0].Options.Stdin)
}

func TestRun_CapturingExecutor(t *testing.T) {
	app := newTestApp(t, cmdline.NewCapturingExecutor())

	out, err := execute(t, app, "run", "greet.yaml")
	require.NoError(t, err)
	assert.Equal(t, "--greeting hello world bob\n", out)
}

func TestRun_ExitCode(t *testing.T) {
	mock := cmdline.NewMockExecutor()
	mock.SetExitCode(3)
	app := newTestApp(t, mock)

	_, err := execute(t, app, "run", "greet.yaml")
	require.Error(t, err)

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unterminated quote", args: []string{"run", "greet.yaml", "--extra", `"open`}},
		{name: "env without equals", args: []string{"run", "greet.yaml", "--env", "FOO"}},
		{name: "env without name", args: []string{"run", "greet.yaml", "--env", "=bar"}},
		{name: "invalid log level", args: []string{"--log-level", "loud", "run", "greet.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := cmdline.NewMockExecutor()
			app := newTestApp(t, mock)

			_, err := execute(t, app, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, mock.Calls())
		})
	}
}

func TestRun_ResolvePath(t *testing.T) {
	app := newTestApp(t, cmdline.NewMockExecutor())
	app.ResolvePath = func(p string) (string, error) {
		return strings.TrimPrefix(p, "profiles/"), nil
	}

	out, err := execute(t, app, "render", "profiles/greet.yaml", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"echo"`)
}
