package exec

import (
	"errors"
	"fmt"
)

// ErrNoCommand is returned when Run or Process is given no arguments.
var ErrNoCommand = errors.New("exec: no command given")

// ExecError describes a command that could not be run or exited non-zero.
type ExecError struct {
	// Command is the program and its arguments.
	Command []string

	// ExitCode is the exit status, or -1 if the command never ran.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %s failed with exit code %d: %v", RenderCommand(e.Command), e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %s failed with exit code %d", RenderCommand(e.Command), e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
