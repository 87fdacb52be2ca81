package failure

import (
	"strings"

	"github.com/jmgilman/go/gitcli/errors"
)

// FatalExitCode is the exit status git uses when it dies with "fatal:".
// Failures detected from output are created with this code.
const FatalExitCode = 128

// Failure is implemented by every error in this package.
type Failure interface {
	errors.PlatformError

	// ExitCode returns the exit status associated with the failure.
	ExitCode() int
}

// gitError holds the fields shared by all failures.
type gitError struct {
	code     errors.ErrorCode
	message  string
	exitCode int
	cause    error
}

func newGitError(code errors.ErrorCode, message string, exitCode int) gitError {
	return gitError{
		code:     code,
		message:  strings.TrimRight(message, " \t\r\n"),
		exitCode: exitCode,
	}
}

// Error returns the git output that caused the failure.
func (e *gitError) Error() string {
	if e.message == "" {
		return strings.ToLower(strings.ReplaceAll(string(e.code), "_", " "))
	}
	return e.message
}

// Code returns the error code.
func (e *gitError) Code() errors.ErrorCode {
	return e.code
}

// Classification returns the default classification of the error code.
func (e *gitError) Classification() errors.ErrorClassification {
	return errors.DefaultClassification(e.code)
}

// Message returns the git output that caused the failure.
func (e *gitError) Message() string {
	return e.message
}

// Context returns the exit code.
func (e *gitError) Context() map[string]interface{} {
	return map[string]interface{}{"exit_code": e.exitCode}
}

// Unwrap returns the underlying cause, if any.
func (e *gitError) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit status.
func (e *gitError) ExitCode() int {
	return e.exitCode
}

// context merges the shared fields with extra fields.
func (e *gitError) context(extra map[string]interface{}) map[string]interface{} {
	ctx := e.Context()
	for k, v := range extra {
		ctx[k] = v
	}
	return ctx
}

// FatalError is a "fatal:" line that matched no more specific rule.
type FatalError struct{ gitError }

// NewFatalError creates a FatalError.
func NewFatalError(message string, exitCode int) Failure {
	return &FatalError{newGitError(errors.CodeFatal, message, exitCode)}
}

// NotRepositoryError means the working directory is not inside a repository.
type NotRepositoryError struct{ gitError }

// NewNotRepositoryError creates a NotRepositoryError.
func NewNotRepositoryError() Failure {
	return &NotRepositoryError{newGitError(errors.CodeNotFound, "not a git repository", FatalExitCode)}
}

// UsageError means git rejected the command line.
type UsageError struct{ gitError }

// NewUsageError creates a UsageError.
func NewUsageError(message string) Failure {
	return &UsageError{newGitError(errors.CodeInvalidInput, message, 129)}
}

// LockedError means another git process holds a lock file.
type LockedError struct{ gitError }

// NewLockedError creates a LockedError.
func NewLockedError(message string) Failure {
	return &LockedError{newGitError(errors.CodeLocked, message, FatalExitCode)}
}

// Path returns the lock file named in the message, if any.
func (e *LockedError) Path() string {
	return Quoted(e.message)
}

// Quoted returns the text between the first pair of single quotes in s,
// or "" if there is none.
func Quoted(s string) string {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(s[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return s[start+1 : start+1+end]
}
