package errors

// ErrorCode represents a specific failure family.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Repository state errors.

	// CodeNotFound indicates a repository, remote, or ref does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a destination path or branch already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates conflicting changes stopped the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeUncommittedChanges indicates local modifications would be overwritten.
	CodeUncommittedChanges ErrorCode = "UNCOMMITTED_CHANGES"

	// CodeInvalidReference indicates a ref, revision, or pathspec could not be resolved.
	CodeInvalidReference ErrorCode = "INVALID_REFERENCE"

	// CodeInvalidState indicates the repository is mid-operation or missing prerequisites.
	CodeInvalidState ErrorCode = "INVALID_STATE"

	// CodeNoUpstream indicates the current branch has no upstream configured.
	CodeNoUpstream ErrorCode = "NO_UPSTREAM"

	// Remote errors.

	// CodeRejected indicates the remote refused an update.
	CodeRejected ErrorCode = "REJECTED"

	// CodeUnauthorized indicates authentication with the remote failed.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeNetwork indicates the remote could not be reached.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates the operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeLocked indicates another git process holds a lock file.
	CodeLocked ErrorCode = "LOCKED"

	// Submodule errors.

	// CodeSubmodule indicates a submodule could not be updated.
	CodeSubmodule ErrorCode = "SUBMODULE_FAILED"

	// Execution errors.

	// CodeInvalidInput indicates the command line given to git was invalid.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeExecutionFailed indicates git exited unsuccessfully for an unclassified reason.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeFatal indicates git reported a fatal error not covered by a more specific code.
	CodeFatal ErrorCode = "FATAL"

	// CodeCancelled indicates the caller cancelled the operation.
	CodeCancelled ErrorCode = "CANCELLED"

	// CodeUnsupportedVersion indicates the installed git is too old.
	CodeUnsupportedVersion ErrorCode = "UNSUPPORTED_VERSION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
