package exec

import (
	"context"
	"errors"
	"io"
	"log/slog"
	osexec "os/exec"
	"time"

	"github.com/jmgilman/go/gitcli/pipe"
	"github.com/jmgilman/go/gitcli/process"
)

// Command is the os/exec backed Executor.
type Command struct {
	config     *config
	ctx        context.Context
	timeout    time.Duration
	logger     *slog.Logger
	bufferSize int
	waitDelay  time.Duration
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config:     newConfig(),
		ctx:        context.Background(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		bufferSize: pipe.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// WithEnv sets environment variables for the next call.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next call.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next Run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout limits the duration of the next Run.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.timeout = timeout
	return c
}

// Run executes args and waits for the command to exit.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &ExecError{ExitCode: -1, Err: ErrNoCommand}
	}

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.config.dir()
	cmd.Env = c.config.environ()
	cmd.WaitDelay = c.waitDelay

	var out capture
	cmd.Stdout = out.stdoutWriter()
	cmd.Stderr = out.stderrWriter()

	c.logger.Debug("running command", "command", RenderCommand(args), "dir", cmd.Dir)
	start := time.Now()
	err := cmd.Run()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	result := out.result(exitCode)
	result.Duration = time.Since(start)

	c.logger.Debug("command finished",
		"command", RenderCommand(args),
		"exit_code", exitCode,
		"duration", result.Duration)

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: exitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}
	return result, nil
}

// Process prepares args as a streaming process. The local directory and
// environment are captured now; the context is supplied to Start.
func (c *Command) Process(args ...string) process.Process {
	defer c.reset()

	return &Process{
		args:       append([]string(nil), args...),
		dir:        c.config.dir(),
		env:        c.config.environ(),
		bufferSize: c.bufferSize,
		waitDelay:  c.waitDelay,
		logger:     c.logger,
		output:     make(chan process.Output, outputBacklog),
		done:       make(chan struct{}),
	}
}

// Clone returns a copy with the same global configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:     c.config.clone(),
		ctx:        context.Background(),
		logger:     c.logger,
		bufferSize: c.bufferSize,
		waitDelay:  c.waitDelay,
	}
}

func (c *Command) reset() {
	c.config.resetLocal()
	c.ctx = context.Background()
	c.timeout = 0
}

// exitCodeOf extracts the exit status from a Wait error.
func exitCodeOf(err error) (int, bool) {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
