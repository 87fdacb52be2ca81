package exec

import (
	"context"
	"time"

	"github.com/jmgilman/go/gitcli/process"
)

// CommandWrapper prepends a fixed program to every call of the wrapped
// Executor. It implements Executor itself, so a wrapper can be passed
// anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper returns a wrapper that runs cmd through executor.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// Program returns the wrapped program name.
func (w *CommandWrapper) Program() string {
	return w.cmd
}

// WithEnv sets environment variables for the next call.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the next call.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the next Run.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout limits the duration of the next Run.
func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// Run executes the wrapped program with args.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	return w.executor.Run(w.prepend(args)...)
}

// Process prepares the wrapped program with args as a streaming process.
func (w *CommandWrapper) Process(args ...string) process.Process {
	return w.executor.Process(w.prepend(args)...)
}

// Clone returns a wrapper around a clone of the executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}

func (w *CommandWrapper) prepend(args []string) []string {
	return append([]string{w.cmd}, args...)
}
