package failure

import (
	"fmt"

	"github.com/jmgilman/go/gitcli/errors"
)

// SubmoduleReason identifies why a submodule update failed.
type SubmoduleReason int

const (
	SubmoduleNoURL SubmoduleReason = iota
	SubmoduleNotInitialized
	SubmoduleRevisionNotFound
	SubmoduleCheckoutFailed
	SubmoduleUnmerged
	SubmoduleFetchFailed
	SubmoduleRecurseFailed
	SubmoduleCommandFailed
)

var submoduleReasonNames = map[SubmoduleReason]string{
	SubmoduleNoURL:            "no_url",
	SubmoduleNotInitialized:   "not_initialized",
	SubmoduleRevisionNotFound: "revision_not_found",
	SubmoduleCheckoutFailed:   "checkout_failed",
	SubmoduleUnmerged:         "unmerged",
	SubmoduleFetchFailed:      "fetch_failed",
	SubmoduleRecurseFailed:    "recurse_failed",
	SubmoduleCommandFailed:    "command_failed",
}

func (r SubmoduleReason) String() string {
	if name, ok := submoduleReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}

// SubmoduleError is a failed submodule update.
//
// git submodule update can exit 0 after these failures, so they are raised
// from the output parsers rather than from the exit status.
type SubmoduleError struct {
	gitError

	Reason SubmoduleReason
	Path   string

	// Revision is the commit or ref involved, when git names one.
	Revision string

	// Command is the update command that failed, for SubmoduleCommandFailed.
	Command string
}

// NewSubmoduleError creates a SubmoduleError from a "No url found" message.
func NewSubmoduleError(message string) Failure {
	return &SubmoduleError{
		gitError: newGitError(errors.CodeSubmodule, message, FatalExitCode),
		Reason:   SubmoduleNoURL,
		Path:     Quoted(message),
	}
}

// NewSubmoduleFailure creates a SubmoduleError with structured fields.
func NewSubmoduleFailure(message string, reason SubmoduleReason, path, revision, command string) *SubmoduleError {
	return &SubmoduleError{
		gitError: newGitError(errors.CodeSubmodule, message, FatalExitCode),
		Reason:   reason,
		Path:     path,
		Revision: revision,
		Command:  command,
	}
}

// Context returns the structured fields.
func (e *SubmoduleError) Context() map[string]interface{} {
	extra := map[string]interface{}{
		"reason": e.Reason.String(),
		"path":   e.Path,
	}
	if e.Revision != "" {
		extra["revision"] = e.Revision
	}
	if e.Command != "" {
		extra["command"] = e.Command
	}
	return e.context(extra)
}

// withMessage returns a copy carrying msg.
func (e *SubmoduleError) withMessage(msg string) error {
	c := *e
	c.gitError = newGitError(e.code, msg, e.exitCode)
	return &c
}
