package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while preserving it as the cause.
// If err already is an Error, its classification is preserved.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) Error {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches context metadata in one step.
// The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeFilesystem, "failed to create directory",
//	        map[string]any{"path": dir})
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) Error {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var pe Error
	if errors.As(err, &pe) {
		classification = pe.Classification()
	}

	return &pathError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}

// WithContext returns a copy of err with key set in its context.
// Errors that are not an Error are converted using CodeUnknown.
//
// Returns nil if err is nil.
func WithContext(err error, key string, value any) Error {
	if err == nil {
		return nil
	}

	var pe Error
	if !errors.As(err, &pe) {
		pe = &pathError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	ctx := pe.Context()
	if ctx == nil {
		ctx = make(map[string]any, 1)
	}
	ctx[key] = value

	return &pathError{
		code:           pe.Code(),
		classification: pe.Classification(),
		message:        pe.Message(),
		context:        ctx,
		cause:          pe.Unwrap(),
	}
}
