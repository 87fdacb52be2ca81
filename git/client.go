package git

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/jmgilman/go/gitcli/exec"
	"github.com/jmgilman/go/gitcli/operation"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/jmgilman/go/gitcli/runner"
)

// localeEnv pins git's output to the messages the parsers recognize and
// keeps git from waiting on a terminal.
var localeEnv = map[string]string{
	"LC_ALL":              "C",
	"LANG":                "C",
	"LANGUAGE":            "",
	"GIT_TERMINAL_PROMPT": "0",
	"GIT_PAGER":           "cat",
}

// Client runs git subcommands.
type Client struct {
	git        exec.Executor
	runner     *runner.Runner
	logger     *slog.Logger
	env        map[string]string
	minVersion Version

	skipVersionCheck bool
	versionOnce      sync.Once
	version          versionInfo
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	path             string
	executor         exec.Executor
	logger           *slog.Logger
	env              map[string]string
	minVersion       Version
	skipVersionCheck bool
	bufferSize       int
	killTimeout      time.Duration
	timeout          time.Duration
}

// WithGitPath sets the git binary. Defaults to "git" looked up in PATH.
//
// Example:
//
//	client := git.New(git.WithGitPath("/usr/local/bin/git"))
func WithGitPath(path string) Option {
	return func(o *clientOptions) {
		if path != "" {
			o.path = path
		}
	}
}

// WithExecutor sets the executor that starts git. It is primarily useful for
// testing. The executor receives the git path as the first argument.
func WithExecutor(e exec.Executor) Option {
	return func(o *clientOptions) {
		o.executor = e
	}
}

// WithLogger sets the logger shared by the client, the runner and the
// executor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEnv adds environment variables to every invocation. The locale
// variables cannot be overridden.
func WithEnv(env map[string]string) Option {
	return func(o *clientOptions) {
		maps.Copy(o.env, env)
	}
}

// WithMinVersion sets the oldest accepted git version.
func WithMinVersion(v Version) Option {
	return func(o *clientOptions) {
		o.minVersion = v
	}
}

// WithoutVersionCheck disables the version gate.
func WithoutVersionCheck() Option {
	return func(o *clientOptions) {
		o.skipVersionCheck = true
	}
}

// WithBufferSize sets the capacity of the per-stream output buffers.
func WithBufferSize(size int) Option {
	return func(o *clientOptions) {
		o.bufferSize = size
	}
}

// WithKillTimeout sets how long a cancelled git process is given to exit.
func WithKillTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.killTimeout = d
	}
}

// WithTimeout bounds every invocation. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	o := &clientOptions{
		path:        "git",
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		env:         make(map[string]string),
		minVersion:  DefaultMinVersion,
		killTimeout: runner.DefaultKillTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	executor := o.executor
	if executor == nil {
		execOpts := []exec.Option{
			exec.WithInheritEnv(),
			exec.WithDisableColors(),
			exec.WithLogger(o.logger),
			exec.WithWaitDelay(o.killTimeout),
		}
		if o.bufferSize > 0 {
			execOpts = append(execOpts, exec.WithBufferSize(o.bufferSize))
		}
		executor = exec.New(execOpts...)
	}

	env := make(map[string]string, len(o.env)+len(localeEnv))
	maps.Copy(env, o.env)
	maps.Copy(env, localeEnv)

	return &Client{
		git: exec.NewWrapper(executor, o.path),
		runner: runner.New(
			runner.WithLogger(o.logger),
			runner.WithKillTimeout(o.killTimeout),
			runner.WithTimeout(o.timeout),
		),
		logger:           o.logger,
		env:              env,
		minVersion:       o.minVersion,
		skipVersionCheck: o.skipVersionCheck,
	}
}

// run executes git args in dir and parses the output with op.
func (c *Client) run(ctx context.Context, dir string, op operation.Operation, handler progress.Handler, args ...string) error {
	if err := c.checkVersion(ctx); err != nil {
		return c.fail(handler, err)
	}

	proc := c.git.Clone().WithDir(dir).WithEnv(c.env).Process(args...)
	return c.runner.Run(ctx, op, proc, handler)
}
