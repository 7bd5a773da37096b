// Package errors provides the structured error type returned by every path
// helper in this module.
//
// Errors carry a code that identifies the failure kind, a retry
// classification, a human readable message and optional context metadata
// (typically the operation and the path involved). They remain fully
// compatible with the standard library (errors.Is, errors.As, errors.Unwrap),
// so sentinel checks such as errors.Is(err, fs.ErrNotExist) keep working on
// wrapped filesystem failures.
//
// # Error Kinds
//
// Filesystem failures are grouped into two kinds:
//
//   - FilesystemError: CodeFilesystem, CodeForbidden, CodeAlreadyExists
//   - FileNotFoundError: CodeNotFound
//
// Use IsFilesystem and IsNotFound to test for a kind without caring about the
// exact code. Input and configuration problems use CodeInvalidInput and
// CodeInvalidConfig.
//
// # Translating io/fs Errors
//
// FromFS classifies an error returned by a filesystem provider:
//
//	data, err := filesystem.ReadFile(name)
//	if err != nil {
//	    return errors.FromFS(err, "read", name)
//	}
//
// The returned error keeps the original as its cause and records "op" and
// "path" in its context.
package errors
