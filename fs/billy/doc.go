// Package billy provides go-billy backed implementations of core.FS.
//
// NewLocal wraps go-billy's osfs rooted at "/" so host paths can be used
// unchanged. NewMemory wraps memfs and is intended for tests: it starts empty
// and keeps everything in memory.
//
// Usage:
//
//	filesystem := billy.NewLocal()
//	ok, err := filesystem.Exists("/etc/hosts")
//
//	mem := billy.NewMemory(billy.WithTempDir("/scratch"))
//	dir, err := mem.MkdirTemp("", "build-*")
//
// Both providers implement core.SymlinkFS and core.TempFS in addition to
// core.FS.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines.
package billy
