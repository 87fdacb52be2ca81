package git

import (
	stderrors "errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/failure"
)

// wrapError wraps an error with context, classifying it first.
// If err is nil, returns nil.
func wrapError(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, classifyError(err))
}

// classifyError maps go-git errors to platform errors. Unknown errors are
// passed through unchanged.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, gogit.ErrRepositoryNotExists):
		return failure.NewNotRepositoryError()
	case stderrors.Is(err, plumbing.ErrReferenceNotFound):
		return errors.Wrap(err, errors.CodeNotFound, "reference not found")
	case stderrors.Is(err, gogit.ErrRemoteNotFound):
		return errors.Wrap(err, errors.CodeNotFound, "remote not found")
	case stderrors.Is(err, gogit.ErrIsBareRepository):
		return errors.Wrap(err, errors.CodeInvalidState, "repository is bare")
	}
	return err
}
