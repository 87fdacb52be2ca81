package failure

import (
	"fmt"

	"github.com/jmgilman/go/gitcli/errors"
)

// AuthenticationError means the remote rejected the credentials.
type AuthenticationError struct{ gitError }

// NewAuthenticationError creates an AuthenticationError.
func NewAuthenticationError(message string, exitCode int) Failure {
	return &AuthenticationError{newGitError(errors.CodeUnauthorized, message, exitCode)}
}

// RepositoryNotFoundError means the remote repository does not exist.
type RepositoryNotFoundError struct{ gitError }

// NewRepositoryNotFoundError creates a RepositoryNotFoundError.
func NewRepositoryNotFoundError(message string, exitCode int) Failure {
	return &RepositoryNotFoundError{newGitError(errors.CodeNotFound, message, exitCode)}
}

// URL returns the repository named in the message, if any.
func (e *RepositoryNotFoundError) URL() string {
	return Quoted(e.message)
}

// NetworkError means the remote could not be reached.
type NetworkError struct{ gitError }

// NewNetworkError creates a NetworkError.
func NewNetworkError(message string, exitCode int) Failure {
	return &NetworkError{newGitError(errors.CodeNetwork, message, exitCode)}
}

// DestinationExistsError means a clone target is a non-empty directory.
type DestinationExistsError struct{ gitError }

// NewDestinationExistsError creates a DestinationExistsError.
func NewDestinationExistsError(message string) Failure {
	return &DestinationExistsError{newGitError(errors.CodeAlreadyExists, message, FatalExitCode)}
}

// RemoteRefNotFoundError means a fetched ref does not exist on the remote.
type RemoteRefNotFoundError struct{ gitError }

// NewRemoteRefNotFoundError creates a RemoteRefNotFoundError.
func NewRemoteRefNotFoundError(message string) Failure {
	return &RemoteRefNotFoundError{newGitError(errors.CodeNotFound, message, FatalExitCode)}
}

// NoUpstreamError means the current branch has no upstream and none was given.
type NoUpstreamError struct{ gitError }

// NewNoUpstreamError creates a NoUpstreamError.
func NewNoUpstreamError(message string) Failure {
	return &NoUpstreamError{newGitError(errors.CodeNoUpstream, message, FatalExitCode)}
}

// PushFailedError is git's summary line after one or more refs failed to push.
type PushFailedError struct{ gitError }

// NewPushFailedError creates a PushFailedError.
func NewPushFailedError(message string, exitCode int) Failure {
	return &PushFailedError{newGitError(errors.CodeRejected, message, exitCode)}
}

// PushRejectedError is a ref update the remote refused, e.g. a non-fast-forward.
type PushRejectedError struct {
	gitError

	LocalRef  string
	RemoteRef string
	Reason    string
}

// NewPushRejectedError creates a PushRejectedError.
func NewPushRejectedError(message, localRef, remoteRef, reason string) Failure {
	if message == "" {
		message = fmt.Sprintf("push of %s to %s rejected (%s)", localRef, remoteRef, reason)
	}
	return &PushRejectedError{
		gitError:  newGitError(errors.CodeRejected, message, 1),
		LocalRef:  localRef,
		RemoteRef: remoteRef,
		Reason:    reason,
	}
}

// Context returns the refs and the rejection reason.
func (e *PushRejectedError) Context() map[string]interface{} {
	return e.context(map[string]interface{}{
		"local_ref":  e.LocalRef,
		"remote_ref": e.RemoteRef,
		"reason":     e.Reason,
	})
}

// RemoteRejectedError is a ref update refused by a hook or policy on the remote.
type RemoteRejectedError struct{ gitError }

// NewRemoteRejectedError creates a RemoteRejectedError.
func NewRemoteRejectedError(message string) Failure {
	return &RemoteRejectedError{newGitError(errors.CodeRejected, message, 1)}
}

// PushHint is the advice git printed after a rejected push.
type PushHint int

const (
	// HintNeedsForce means the remote ref points at a non-commit object.
	HintNeedsForce PushHint = iota
	// HintAlreadyExists means a pushed tag already exists on the remote.
	HintAlreadyExists
	// HintFetchFirst means the remote has commits the local side lacks.
	HintFetchFirst
	// HintCheckoutPullPush means a pushed branch other than HEAD is behind.
	HintCheckoutPullPush
	// HintCurrentBehindRemote means the current branch is behind its remote.
	HintCurrentBehindRemote
)

var pushHintNames = map[PushHint]string{
	HintNeedsForce:          "needs_force",
	HintAlreadyExists:       "already_exists",
	HintFetchFirst:          "fetch_first",
	HintCheckoutPullPush:    "checkout_pull_push",
	HintCurrentBehindRemote: "current_behind_remote",
}

func (h PushHint) String() string {
	if name, ok := pushHintNames[h]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(h))
}

// PushHintError is a push failure recognized from git's advice text.
type PushHintError struct {
	gitError

	Hint PushHint
}

// NewPushHintError creates a PushHintError.
func NewPushHintError(message string, hint PushHint) Failure {
	return &PushHintError{
		gitError: newGitError(errors.CodeRejected, message, 1),
		Hint:     hint,
	}
}

// Context returns the hint name.
func (e *PushHintError) Context() map[string]interface{} {
	return e.context(map[string]interface{}{"hint": e.Hint.String()})
}
