// Package cli implements the cmdline command.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/cmdline"
	"github.com/jmgilman/go/cmdline/profile"
)

// ExitCodeError is returned when the command should exit with a specific
// code, typically the exit code of an executed command line.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// App holds the dependencies shared by every subcommand.
type App struct {
	// FS is the filesystem profiles are read from.
	FS billy.Filesystem

	// ResolvePath maps a profile argument to a path within FS. When nil the
	// argument is used as is.
	ResolvePath func(string) (string, error)

	// Config provides the executor for run. When nil, a ProcessExecutor
	// logging to the command's logger is used.
	Config *cmdline.Config

	logger *slog.Logger
}

// NewRootCommand creates the cmdline command tree.
func NewRootCommand(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "cmdline",
		Short: "Render and run declarative command-line profiles",
		Long: `cmdline loads a command-line profile (YAML, JSON or CUE) and either
prints the resulting command line or executes it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			app.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCommand(app), newRunCommand(app))

	return root
}

func (a *App) load(ctx context.Context, path string) (*profile.Profile, error) {
	if a.ResolvePath != nil {
		resolved, err := a.ResolvePath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profile path %q: %w", path, err)
		}
		path = resolved
	}
	return profile.Load(ctx, a.FS, path)
}

func (a *App) config() cmdline.Config {
	if a.Config != nil {
		return *a.Config
	}
	return cmdline.Config{Executor: cmdline.NewProcessExecutor(cmdline.WithLogger(a.log()))}
}

func (a *App) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
