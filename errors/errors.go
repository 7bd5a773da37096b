package errors

import "fmt"

// Error extends the standard error interface with a code, a retry
// classification and contextual metadata.
type Error interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Classification returns whether the failure is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil if none.
	Context() map[string]any

	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
}

// pathError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type pathError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *pathError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *pathError) Code() ErrorCode {
	return e.code
}

func (e *pathError) Classification() ErrorClassification {
	return e.classification
}

func (e *pathError) Message() string {
	return e.message
}

// Context returns a copy so the error stays immutable.
func (e *pathError) Context() map[string]any {
	return copyContext(e.context)
}

func (e *pathError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
