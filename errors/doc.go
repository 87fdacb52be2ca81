// Package errors provides structured error handling for git subprocess failures.
//
// Every failure surfaced by this module carries an ErrorCode describing the
// failure family (authentication, network, conflict, rejected push, ...), a
// classification telling callers whether retrying the same git command could
// succeed, a human-readable message, and optional context metadata such as
// ref names or conflicting paths. PlatformError remains fully compatible with
// the standard library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Creating Errors
//
//	err := errors.New(errors.CodeInvalidReference, "pathspec 'nope' did not match")
//	err = errors.WithContext(err, "ref", "nope")
//
// Wrapping lower-level failures:
//
//	if err := proc.Start(); err != nil {
//	    return errors.Wrap(err, errors.CodeExecutionFailed, "failed to start git")
//	}
//
// # Retry Decisions
//
// Network failures, timeouts and lock contention are retryable; everything
// that depends on repository state (conflicts, rejected refs, missing refs) is
// permanent:
//
//	if errors.IsRetryable(err) {
//	    // schedule another fetch
//	}
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse for machine-readable output.
// The wrapped error chain is never serialized.
package errors
