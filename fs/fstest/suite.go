// Package fstest provides a conformance suite for core.FS providers.
//
// Providers call TestSuite from their own tests. Each subtest receives a fresh
// filesystem together with an existing, writable root directory; all entries
// the suite creates live below that root.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return myprovider.New(), t.TempDir()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// NewFSFunc returns a fresh filesystem and an existing root directory on it.
type NewFSFunc func(t *testing.T) (core.FS, string)

// TestSuite runs all applicable conformance tests against a provider.
// Optional capabilities (SymlinkFS, TempFS) are skipped when unsupported.
func TestSuite(t *testing.T, newFS NewFSFunc) {
	t.Run("ReadFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestReadFS(t, filesystem, root)
	})
	t.Run("WriteFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestWriteFS(t, filesystem, root)
	})
	t.Run("ManageFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestManageFS(t, filesystem, root)
	})
	t.Run("SymlinkFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestSymlinkFS(t, filesystem, root)
	})
	t.Run("TempFS", func(t *testing.T) {
		filesystem, root := newFS(t)
		TestTempFS(t, filesystem, root)
	})
}
