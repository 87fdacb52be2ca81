package process

import (
	"context"
	"io"
	"time"
)

// Source identifies the stream a line came from.
type Source int

const (
	Stdout Source = iota
	Stderr
)

func (s Source) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Output is one line of output, or the end-of-output sentinel.
type Output struct {
	Source Source
	Line   string

	// Closed marks the final value on the channel. Line is empty.
	Closed bool
}

// ClosedOutput is the end-of-output sentinel.
var ClosedOutput = Output{Closed: true}

// Process is a started or startable child process.
type Process interface {
	// Start launches the process. Output becomes readable afterwards.
	Start(ctx context.Context) error

	// Kill asks the process to exit immediately.
	Kill() error

	// WaitForExit blocks until the process has exited or timeout elapses,
	// and reports whether it exited.
	WaitForExit(timeout time.Duration) bool

	// Wait blocks until the process has exited and its output has been
	// delivered, then returns the exit code. err is non-nil only when the
	// process could not be waited on; a non-zero exit is not an error.
	Wait() (exitCode int, err error)

	// Stdin returns the process's standard input.
	Stdin() io.WriteCloser

	// Output returns the line channel. It is closed after ClosedOutput.
	Output() <-chan Output

	// String renders the command line for logs and error messages.
	String() string
}
