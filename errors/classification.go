package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: unreachable remotes, timeouts, stale lock files.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry
	// without changing the repository or the request.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (transient remote or lock conditions)
	CodeNetwork: ClassificationRetryable,
	CodeTimeout: ClassificationRetryable,
	CodeLocked:  ClassificationRetryable,

	// Permanent errors (depend on repository or request contents)
	CodeNotFound:           ClassificationPermanent,
	CodeAlreadyExists:      ClassificationPermanent,
	CodeConflict:           ClassificationPermanent,
	CodeUncommittedChanges: ClassificationPermanent,
	CodeInvalidReference:   ClassificationPermanent,
	CodeInvalidState:       ClassificationPermanent,
	CodeNoUpstream:         ClassificationPermanent,
	CodeRejected:           ClassificationPermanent,
	CodeUnauthorized:       ClassificationPermanent,
	CodeSubmodule:          ClassificationPermanent,
	CodeInvalidInput:       ClassificationPermanent,
	CodeExecutionFailed:    ClassificationPermanent,
	CodeFatal:              ClassificationPermanent,
	CodeCancelled:          ClassificationPermanent,
	CodeUnsupportedVersion: ClassificationPermanent,
	CodeInternal:           ClassificationPermanent,
	CodeUnknown:            ClassificationPermanent,
}

// DefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func DefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
