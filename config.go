package cmdline

import "sync"

// Config holds the settings threaded into every Builder created from it.
type Config struct {
	// Executor runs built command lines. A nil Executor falls back to a
	// ProcessExecutor with default settings.
	Executor Executor
}

// DefaultConfig returns a Config that executes commands as child processes.
func DefaultConfig() Config {
	return Config{Executor: NewProcessExecutor()}
}

// BuilderForCommand returns an empty Builder for command that carries this
// configuration.
func (c Config) BuilderForCommand(command string) Builder {
	return Builder{
		command:  command,
		executor: c.executor(),
	}
}

func (c Config) executor() Executor {
	if c.Executor == nil {
		return NewProcessExecutor()
	}
	return c.Executor
}

var (
	defaultMu     sync.RWMutex
	defaultConfig = DefaultConfig()
)

// BuilderForCommand returns an empty Builder for command using the
// process-wide configuration. Libraries should prefer Config.BuilderForCommand
// so that callers control the executor.
func BuilderForCommand(command string) Builder {
	return Configuration().BuilderForCommand(command)
}

// Configuration returns a copy of the process-wide configuration.
func Configuration() Config {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConfig
}

// Configure updates the process-wide configuration. It is intended for the
// composition root of a program; builders created before the call keep the
// configuration they were created with.
func Configure(fn func(*Config)) {
	if fn == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	fn(&defaultConfig)
}

// Reset restores the process-wide configuration to DefaultConfig.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = DefaultConfig()
}
