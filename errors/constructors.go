package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidInput, "project name is empty")
func New(code ErrorCode, message string) Error {
	return &pathError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeFilesystem, "too many links resolving %s", path)
func Newf(code ErrorCode, format string, args ...any) Error {
	return New(code, fmt.Sprintf(format, args...))
}
