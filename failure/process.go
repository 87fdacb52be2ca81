package failure

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jmgilman/go/gitcli/errors"
)

// CancelledError means the operation was stopped before git finished.
type CancelledError struct{ gitError }

// NewCancelledError creates a CancelledError. cause is usually ctx.Err().
func NewCancelledError(cause error) Failure {
	code := errors.CodeCancelled
	message := "operation cancelled"
	if stderrors.Is(cause, context.DeadlineExceeded) {
		code = errors.CodeTimeout
		message = "operation timed out"
	}
	e := &CancelledError{newGitError(code, message, -1)}
	e.cause = cause
	return e
}

// ExitError means git exited unsuccessfully without printing a recognized failure.
type ExitError struct {
	gitError

	// Command is the rendered command line.
	Command string

	// Stderr holds the last lines git wrote to stderr.
	Stderr []string
}

// NewExitError creates an ExitError.
func NewExitError(command string, exitCode int, stderr []string) Failure {
	message := fmt.Sprintf("%s exited with code %d", command, exitCode)
	if len(stderr) > 0 {
		message += ": " + strings.Join(stderr, "\n")
	}
	return &ExitError{
		gitError: newGitError(errors.CodeExecutionFailed, message, exitCode),
		Command:  command,
		Stderr:   stderr,
	}
}

// Context returns the command line.
func (e *ExitError) Context() map[string]interface{} {
	return e.context(map[string]interface{}{"command": e.Command})
}

// UnsupportedVersionError means the installed git is older than required.
type UnsupportedVersionError struct {
	gitError

	Have string
	Want string
}

// NewUnsupportedVersionError creates an UnsupportedVersionError.
func NewUnsupportedVersionError(have, want string) Failure {
	return &UnsupportedVersionError{
		gitError: newGitError(errors.CodeUnsupportedVersion,
			fmt.Sprintf("git %s is older than the required %s", have, want), -1),
		Have: have,
		Want: want,
	}
}

// Context returns both versions.
func (e *UnsupportedVersionError) Context() map[string]interface{} {
	return e.context(map[string]interface{}{"have": e.Have, "want": e.Want})
}

// WithMessage returns err with its message replaced by msg when err is a
// failure whose text is gathered after detection (submodule failures raised
// by parsers). Other errors are returned unchanged.
func WithMessage(err error, msg string) error {
	if m, ok := err.(interface{ withMessage(string) error }); ok && msg != "" {
		return m.withMessage(msg)
	}
	return err
}
