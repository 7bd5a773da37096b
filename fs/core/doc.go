// Package core defines the filesystem contract used by the path helpers.
//
// Every helper in this module reaches the disk through an FS so callers and
// tests can substitute an in-memory filesystem or an instrumented stub for the
// real one. The contract is deliberately narrow: it covers what path
// resolution, directory management, temporary directories and file loading
// need and nothing else.
//
// # Interface Hierarchy
//
// FS is composed of three sub-interfaces:
//
//   - ReadFS: Stat, ReadDir, ReadFile, Exists
//   - WriteFS: WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll
//
// Optional capabilities are discovered with type assertions:
//
//   - SymlinkFS: Lstat, Readlink (used to resolve symbolic links)
//   - TempFS: TempDir, MkdirTemp (used to create temporary directories)
//
// # Paths
//
// Unlike io/fs, names passed to an FS are host paths: absolute paths are
// accepted and interpreted relative to the root of the provider.
//
// # Providers
//
// The go-billy backed providers in github.com/jmgilman/go/paths/fs/billy
// implement every interface in this package. Providers should be verified with
// github.com/jmgilman/go/paths/fs/fstest.
package core
