package errors

// ErrorClassification indicates whether a failed operation may succeed if
// attempted again. Helpers in this module never retry on their own; the
// classification is advisory for callers.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a transient failure.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will not resolve itself.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Generic I/O failures are often transient (busy device, full disk being
	// cleaned up, interrupted call).
	CodeFilesystem: ClassificationRetryable,

	CodeForbidden:     ClassificationPermanent,
	CodeAlreadyExists: ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns ClassificationPermanent for unknown codes.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
