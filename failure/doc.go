// Package failure defines the typed errors an operation can end with.
//
// Every type implements errors.PlatformError from this module's errors
// package, so callers can branch on the error code or the retry
// classification without knowing the concrete type, and use errors.As when
// they need the structured fields:
//
//	err := client.Push(ctx, opts, handler)
//	var rejected *failure.PushRejectedError
//	if errors.As(err, &rejected) {
//		fmt.Printf("%s was rejected: %s\n", rejected.RemoteRef, rejected.Reason)
//	}
//
//	if platformerrors.IsRetryable(err) {
//		// network failures and lock contention
//	}
//
// The message of a failure is the text git printed, starting at the line that
// was recognized as fatal and including every line that followed it.
//
// Constructors that take (message, exitCode), (message) or no arguments can
// be registered with the mapping package, which builds failures from
// matching output lines.
package failure
