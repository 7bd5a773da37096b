package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem contract consumed by the path helpers.
type FS interface {
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Stat returns metadata for the named entry, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named entry exists.
	// A missing entry yields false and a nil error. Any other failure yields
	// false and the error, meaning existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines creation operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. It fails with ErrExist if an entry
	// already occupies name and with ErrNotExist if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// It returns nil if name is already a directory and an error if a
	// non-directory occupies name or one of its ancestors.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and everything below it.
	// A missing path is not an error.
	RemoveAll(path string) error
}

// SymlinkFS exposes symbolic links (typically local filesystems only).
//
//	if sfs, ok := filesystem.(SymlinkFS); ok {
//	    target, err := sfs.Readlink("/var/run")
//	}
type SymlinkFS interface {
	// Lstat returns metadata without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// TempFS creates temporary directories.
//
//	if tfs, ok := filesystem.(TempFS); ok {
//	    dir, err := tfs.MkdirTemp("", "build-*")
//	}
type TempFS interface {
	// TempDir returns the default parent for temporary directories.
	TempDir() string

	// MkdirTemp creates a new uniquely named directory under dir and returns
	// its path. The name is pattern with its last "*" replaced by a random
	// string, or pattern followed by the random string if it has no "*".
	// An empty dir means TempDir().
	MkdirTemp(dir, pattern string) (string, error)
}
