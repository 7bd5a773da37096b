package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// It is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// It is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join is the standard library errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown if err is nil or carries no Error.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle missing file
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var pe Error
	if stderrors.As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the classification from err's chain.
// Returns ClassificationPermanent if err is nil or carries no Error.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var pe Error
	if stderrors.As(err, &pe) {
		return pe.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// IsFilesystem reports whether err is a FilesystemError: a failure to create,
// remove or access an entry for a reason other than it being missing.
func IsFilesystem(err error) bool {
	return filesystemCodes[GetCode(err)]
}

// IsNotFound reports whether err is a FileNotFoundError.
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}
