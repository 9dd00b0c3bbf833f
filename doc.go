// Package cmdline builds immutable representations of external command
// invocations and hands them to a pluggable Executor.
//
// A command line is made of a command, subcommands, options, flags,
// positional arguments and environment variables. It renders itself in two
// forms: an argument vector for process execution (Array) and a display
// string for logs (String). The two forms differ on purpose. Array never
// quotes and never includes the environment; String quotes values and
// prefixes the environment.
//
// # Basic Usage
//
// Create a builder, add components and build:
//
//	cl := cmdline.BuilderForCommand("git").
//		WithSubcommand("commit").
//		WithOption("--message", "Initial commit").
//		WithFlag("--amend").
//		Build()
//
//	fmt.Println(cl.String()) // git --message Initial commit --amend commit
//	err := cl.Execute(ctx)
//
// Every With method returns a new Builder. A partially configured builder can
// be reused as a template:
//
//	base := cmdline.BuilderForCommand("docker").WithFlag("--debug")
//	ps := base.WithSubcommand("ps").Build()
//	images := base.WithSubcommand("images").Build()
//
// Absent values are no-ops, so optional inputs chain without conditionals:
//
//	cl := cmdline.BuilderForCommand("curl").
//		WithOption("--user", user). // skipped when user is ""
//		WithArgument(url).
//		Build()
//
// # Options and Placement
//
// Options render after the command by default. The placement can be moved
// for all options of a builder or for a single option:
//
//	cl := cmdline.BuilderForCommand("terraform").
//		WithOptionsAfterSubcommands().
//		WithOptionSeparator("=").
//		WithSubcommand("apply").
//		WithOption("-var", "region=eu", cmdline.WithQuoting(`"`)).
//		WithFlag("-no-color", cmdline.WithPlacement(cmdline.AfterArguments)).
//		Build()
//
// A setting given for an item always wins over the builder default, which
// wins over the package default (a single space separator, no quoting,
// AfterCommand).
//
// Subcommand options always follow their subcommand's name:
//
//	cl := cmdline.BuilderForCommand("gh").
//		WithSubcommand("pr", func(s cmdline.SubcommandBuilder) cmdline.SubcommandBuilder {
//			return s.WithOption("--repo", "jmgilman/go")
//		}).
//		WithSubcommand("list").
//		Build()
//
// # Appliables
//
// Reusable groups of settings implement Appliable:
//
//	verbose := cmdline.AppliableFunc[cmdline.Builder](func(b cmdline.Builder) cmdline.Builder {
//		return b.WithFlags("-v", "--progress")
//	})
//	cl := cmdline.BuilderForCommand("rsync").WithAppliable(verbose).Build()
//
// # Executors
//
// A CommandLine carries the Executor it was built with. The default is a
// ProcessExecutor, which runs the argument vector with os/exec. Streams are
// passed per execution:
//
//	var out bytes.Buffer
//	err := cl.Execute(ctx, cmdline.WithStdout(&out), cmdline.WithStdin(strings.NewReader("input")))
//
// Libraries should receive a Config rather than use the process-wide default:
//
//	cfg := cmdline.Config{Executor: cmdline.NewProcessExecutor(cmdline.WithDisableColors())}
//	cl := cfg.BuilderForCommand("make").WithArgument("build").Build()
//
// Tests can use a MockExecutor to record executions:
//
//	mock := cmdline.NewMockExecutor()
//	mock.SetExitCode(1)
//	err := cmdline.Config{Executor: mock}.BuilderForCommand("ls").Build().Execute(ctx)
//	// err is an *ExecutionError; mock.Calls() holds the command line
//
// # Error Handling
//
// A command that exits with a non-zero code produces an *ExecutionError. It
// implements errors.PlatformError from github.com/jmgilman/go/errors:
//
//	var execErr *cmdline.ExecutionError
//	if errors.As(err, &execErr) {
//		fmt.Printf("exit code %d: %s\n", execErr.ExitCode, execErr.Stderr)
//	}
//
// A command that cannot be started returns a PlatformError with
// errors.CodeNotFound or errors.CodeExecutionFailed instead.
package cmdline
