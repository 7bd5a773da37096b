package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// FromFS classifies an error returned by a filesystem provider and wraps it
// with the operation and path that produced it.
//
// Missing entries map to CodeNotFound, permission failures to CodeForbidden,
// existing entries to CodeAlreadyExists and everything else to
// CodeFilesystem. An err that already is an Error is returned with op and path
// added to its context but otherwise untouched.
//
// Returns nil if err is nil.
func FromFS(err error, op, path string) Error {
	if err == nil {
		return nil
	}

	var pe Error
	if stderrors.As(err, &pe) {
		return WithContext(WithContext(pe, "op", op), "path", path)
	}

	code := CodeFilesystem
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case stderrors.Is(err, fs.ErrPermission):
		code = CodeForbidden
	case stderrors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	}

	return WrapWithContext(err, code, fmt.Sprintf("failed to %s %s", op, path), map[string]any{
		"op":   op,
		"path": path,
	})
}
