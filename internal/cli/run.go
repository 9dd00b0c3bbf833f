package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/cmdline"
)

type runOptions struct {
	extra string
	dir   string
	env   []string
	stdin bool
}

func newRunCommand(app *App) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <profile>",
		Short: "Execute the command line described by a profile",
		Long: `Execute the command line described by a profile.

Extra arguments are split like a POSIX shell would split them and appended
after the profile's arguments. Standard input is forwarded only with --stdin.
The command's exit code is propagated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.extra, "extra", "", "extra arguments, split with shell quoting rules")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "working directory, overriding the profile")
	cmd.Flags().StringArrayVarP(&opts.env, "env", "e", nil, "environment variable as KEY=VALUE (repeatable)")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "forward standard input to the command")

	return cmd
}

func runProfile(cmd *cobra.Command, app *App, path string, opts runOptions) error {
	p, err := app.load(cmd.Context(), path)
	if err != nil {
		return err
	}

	b, err := p.Builder(app.config())
	if err != nil {
		return err
	}

	extra, err := shlex.Split(opts.extra)
	if err != nil {
		return fmt.Errorf("failed to split extra arguments: %w", err)
	}
	b = b.WithArguments(cmdline.Args(extra)...).WithWorkingDirectory(opts.dir)

	for _, kv := range opts.env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid environment variable %q, expected KEY=VALUE", kv)
		}
		b = b.WithEnvironmentVariable(name, value)
	}

	cl := b.Build()
	app.log().Info("running profile", "profile", path, "command_line", cl.String())

	execOpts := []cmdline.ExecuteOption{
		cmdline.WithStdout(cmd.OutOrStdout()),
		cmdline.WithStderr(cmd.ErrOrStderr()),
	}
	if opts.stdin {
		execOpts = append(execOpts, cmdline.WithStdin(cmd.InOrStdin()))
	}

	err = cl.Execute(cmd.Context(), execOpts...)

	var execErr *cmdline.ExecutionError
	if errors.As(err, &execErr) {
		code := execErr.ExitCode
		if code <= 0 {
			code = 1
		}
		return &ExitCodeError{Code: code}
	}

	return err
}
