package errors

// ErrorCode represents a specific error condition.
// Codes are strings so they read well in logs and error messages.
type ErrorCode string

const (
	// Filesystem errors.

	// CodeFilesystem indicates a filesystem operation failed (I/O error,
	// a non-directory in the way, a cleanup that could not complete).
	CodeFilesystem ErrorCode = "FILESYSTEM_ERROR"

	// CodeForbidden indicates the operating system denied access to a path.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeAlreadyExists indicates an entry already occupies the target path.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotFound indicates a file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors.

	// CodeInvalidInput indicates a caller supplied an unusable argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a manifest or configuration is malformed.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// filesystemCodes are the codes reported as FilesystemError.
var filesystemCodes = map[ErrorCode]bool{
	CodeFilesystem:    true,
	CodeForbidden:     true,
	CodeAlreadyExists: true,
}
