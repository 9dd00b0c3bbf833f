package cmdline

import (
	"context"
	"io"
	"sync"
)

var _ Executor = (*MockExecutor)(nil)

// Call is a single invocation recorded by a MockExecutor.
type Call struct {
	CommandLine CommandLine
	Options     ExecuteOptions
	ExitCode    int
}

// MockExecutor records executions instead of running them. It can be
// configured to write canned output and to fail with a given exit code.
// It is safe for concurrent use.
type MockExecutor struct {
	mu       sync.Mutex
	calls    []Call
	exitCode int
	stdout   string
	stderr   string
}

// NewMockExecutor creates a MockExecutor that succeeds and writes nothing.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// SetExitCode sets the exit code reported by subsequent executions. A
// non-zero code makes Execute return an *ExecutionError.
func (m *MockExecutor) SetExitCode(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exitCode = code
}

// ExitCode returns the configured exit code.
func (m *MockExecutor) ExitCode() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exitCode
}

// SetStdout sets content written to the execution's standard output.
func (m *MockExecutor) SetStdout(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stdout = content
}

// SetStderr sets content written to the execution's standard error.
func (m *MockExecutor) SetStderr(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stderr = content
}

// Execute records the call, writes any canned output to the supplied
// writers, and fails if the configured exit code is non-zero.
func (m *MockExecutor) Execute(_ context.Context, commandLine CommandLine, opts ExecuteOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, Call{
		CommandLine: commandLine,
		Options:     opts,
		ExitCode:    m.exitCode,
	})

	if err := writeCanned(opts.Stdout, m.stdout); err != nil {
		return err
	}
	if err := writeCanned(opts.Stderr, m.stderr); err != nil {
		return err
	}

	if m.exitCode != 0 {
		return &ExecutionError{
			CommandLine: commandLine.String(),
			ExitCode:    m.exitCode,
			Stderr:      m.stderr,
		}
	}

	return nil
}

// Calls returns a copy of the recorded calls in order.
func (m *MockExecutor) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSlice(m.calls)
}

// Reset clears recorded calls, canned output and the exit code.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.exitCode = 0
	m.stdout = ""
	m.stderr = ""
}

func writeCanned(w io.Writer, content string) error {
	if w == nil || content == "" {
		return nil
	}
	_, err := io.WriteString(w, content)
	return err
}
