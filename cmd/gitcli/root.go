package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmgilman/go/gitcli/config"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/git"
	"github.com/jmgilman/go/gitcli/pipe"
	"github.com/jmgilman/go/gitcli/runner"
	"github.com/spf13/cobra"
)

var (
	// Set at build time via -ldflags.
	version = "dev"
	commit  = "none"
)

// Process exit statuses.
const (
	exitOK        = 0
	exitFailure   = 1
	exitCancelled = 130
)

// app carries the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	dir     string

	cfg     *config.Config
	logger  *slog.Logger
	client  *git.Client
	printer *printer

	// extra is appended to the options built from configuration.
	extra []git.Option
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitcli",
		Short: "Run git commands with structured progress and typed failures",
		Long: `gitcli runs git as a subprocess, parses its output as it streams, and
reports progress events and typed failures.

Output is rendered as progress bars (text) or as one document per event
(json, yaml). Failures are reported with a stable error code.`,
		Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Configuration file (default $XDG_CONFIG_HOME/gitcli/config.yaml)")
	pf.StringVarP(&a.dir, "dir", "C", ".", "Run as if git was started in this directory")
	pf.String("git-path", "git", "Path to the git binary")
	pf.String("min-version", git.DefaultMinVersion.String(), "Minimum supported git version")
	pf.Int("buffer-size", pipe.DefaultCapacity, "Output buffer capacity in bytes")
	pf.Duration("kill-timeout", runner.DefaultKillTimeout, "Time to wait for git to exit after cancellation")
	pf.Duration("timeout", 0, "Abort git after this long (0 for no limit)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", config.FormatText, "Log format (text, json)")
	pf.StringP("output", "o", config.FormatText, "Output format (text, json, yaml)")

	cmd.AddCommand(
		a.cloneCmd(),
		a.fetchCmd(),
		a.pullCmd(),
		a.pushCmd(),
		a.checkoutCmd(),
		a.mergeCmd(),
		a.rebaseCmd(),
		a.revertCmd(),
		a.stashCmd(),
		a.submoduleCmd(),
		a.versionCmd(),
	)
	return cmd
}

// setup loads configuration and builds the client before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := cfg.Logger(a.stderr)
	if err != nil {
		return err
	}

	opts, err := cfg.ClientOptions(logger)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.printer = newPrinter(cfg.Output.Format, a.stdout, a.stderr)
	a.client = git.New(append(opts, a.extra...)...)

	if cfg.File != "" {
		logger.Debug("loaded configuration", "file", cfg.File)
	}
	return nil
}

// execute runs the command line and returns the process exit status.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if a.printer == nil {
		a.printer = newPrinter(config.FormatText, a.stdout, a.stderr)
	}
	defer a.printer.close()

	if err == nil {
		return exitOK
	}
	a.printer.failure(err)
	return exitCode(ctx, err)
}

func exitCode(ctx context.Context, err error) int {
	if errors.GetCode(err) == errors.CodeCancelled || ctx.Err() != nil {
		return exitCancelled
	}
	return exitFailure
}
