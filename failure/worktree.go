package failure

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/progress"
)

// InvalidReferenceError means a ref, revision or pathspec did not resolve.
type InvalidReferenceError struct{ gitError }

// NewInvalidReferenceError creates an InvalidReferenceError.
func NewInvalidReferenceError(message string, exitCode int) Failure {
	return &InvalidReferenceError{newGitError(errors.CodeInvalidReference, message, exitCode)}
}

// BranchExistsError means a branch to be created already exists.
type BranchExistsError struct{ gitError }

// NewBranchExistsError creates a BranchExistsError.
func NewBranchExistsError(message string) Failure {
	return &BranchExistsError{newGitError(errors.CodeAlreadyExists, message, FatalExitCode)}
}

// Branch returns the branch named in the message, if any.
func (e *BranchExistsError) Branch() string {
	return Quoted(e.message)
}

// UncommittedChangesError means local modifications block the operation.
type UncommittedChangesError struct{ gitError }

// NewUncommittedChangesError creates an UncommittedChangesError.
func NewUncommittedChangesError(message string) Failure {
	return &UncommittedChangesError{newGitError(errors.CodeUncommittedChanges, message, 1)}
}

// UnrelatedHistoriesError means a merge was refused for lack of a common ancestor.
type UnrelatedHistoriesError struct{ gitError }

// NewUnrelatedHistoriesError creates an UnrelatedHistoriesError.
func NewUnrelatedHistoriesError(message string) Failure {
	return &UnrelatedHistoriesError{newGitError(errors.CodeInvalidState, message, FatalExitCode)}
}

// NonFastForwardError means a fast-forward-only merge was not possible.
type NonFastForwardError struct{ gitError }

// NewNonFastForwardError creates a NonFastForwardError.
func NewNonFastForwardError(message string) Failure {
	return &NonFastForwardError{newGitError(errors.CodeRejected, message, FatalExitCode)}
}

// OperationInProgressError means a rebase or merge is already under way.
type OperationInProgressError struct{ gitError }

// NewOperationInProgressError creates an OperationInProgressError.
func NewOperationInProgressError(message string) Failure {
	return &OperationInProgressError{newGitError(errors.CodeInvalidState, message, FatalExitCode)}
}

// ConflictError means a merge, rebase or revert stopped on conflicts.
type ConflictError struct{ gitError }

// NewConflictError creates a ConflictError.
func NewConflictError(message string, exitCode int) Failure {
	return &ConflictError{newGitError(errors.CodeConflict, message, exitCode)}
}

// NoCommitsError means the repository has no commit to stash against.
type NoCommitsError struct{ gitError }

// NewNoCommitsError creates a NoCommitsError.
func NewNoCommitsError() Failure {
	return &NoCommitsError{newGitError(errors.CodeInvalidState, "repository has no initial commit", 1)}
}

// CheckoutConflictError lists the paths that stopped a checkout.
type CheckoutConflictError struct {
	gitError

	Conflicts []progress.CheckoutConflict
}

// NewCheckoutConflictError creates a CheckoutConflictError.
func NewCheckoutConflictError(message string, conflicts []progress.CheckoutConflict) Failure {
	if message == "" {
		paths := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			paths = append(paths, c.Path)
		}
		message = fmt.Sprintf("checkout would overwrite: %s", strings.Join(paths, ", "))
	}
	return &CheckoutConflictError{
		gitError:  newGitError(errors.CodeConflict, message, 1),
		Conflicts: conflicts,
	}
}

// Context returns the conflicting paths.
func (e *CheckoutConflictError) Context() map[string]interface{} {
	paths := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		paths = append(paths, c.Path)
	}
	return e.context(map[string]interface{}{"paths": paths})
}
