package exec

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmgilman/go/gitcli/process"
)

// Executor runs commands with a fluent, per-call configuration.
type Executor interface {
	// WithEnv sets environment variables for the next call.
	// These override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next call.
	WithDir(dir string) Executor

	// WithContext sets the context for the next Run.
	WithContext(ctx context.Context) Executor

	// WithTimeout limits the duration of the next Run.
	WithTimeout(timeout time.Duration) Executor

	// Run executes the command and waits for it to exit.
	Run(args ...string) (*Result, error)

	// Process prepares the command as a streaming process without starting it.
	Process(args ...string) process.Process

	// Clone returns an independent copy with the same global configuration.
	Clone() Executor
}

// Result is the outcome of a captured Run.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Combined holds stdout and stderr in the order they were written.
	Combined string

	// ExitCode is the process exit status.
	ExitCode int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Option configures global settings of a Command.
type Option func(*Command)

// WithEnv sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithInheritEnv starts every command with the parent's environment.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.inheritEnv = true
	}
}

// WithDisableColors sets the common variables that turn off colored output.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.disableColors = true
	}
}

// WithLogger sets the logger used for command start and exit records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Command) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBufferSize sets the capacity of each stream buffer used by Process.
func WithBufferSize(size int) Option {
	return func(c *Command) {
		c.bufferSize = size
	}
}

// WithWaitDelay bounds how long a process's output may stay open after it
// exits or is killed. Zero waits indefinitely.
func WithWaitDelay(d time.Duration) Option {
	return func(c *Command) {
		c.waitDelay = d
	}
}
