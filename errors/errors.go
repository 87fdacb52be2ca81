package errors

// PlatformError extends the standard error interface with structured information.
//
// Typed git failures (see the failure package) and errors built with New or
// Wrap both satisfy this interface, so callers can switch on Code() without
// knowing which concrete type produced the failure.
type PlatformError interface {
	error

	// Code returns the error code identifying the failure family.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
