// Package paths provides filesystem path helpers: joining and resolving
// paths, creating directories, checking existence, scoped temporary
// directories, lazily loaded file contents and per-project directories.
//
// Every helper reaches the disk through a core.FS. The package-level
// functions use the local filesystem; New builds an independent helper set
// with its own filesystem, logger and permissions:
//
//	p := paths.New(paths.WithFS(billy.NewMemory()))
//	dir, err := p.ProjectPath("/srv", "api")
//
// # Resolution
//
// Join and Resolve always return absolute, cleaned paths. Symbolic links are
// resolved for the part of the path that exists; missing trailing components
// are kept as written, so resolution never fails just because nothing exists
// on disk yet.
//
// # Temporary Directories
//
// WithTempDir runs a function inside a freshly created directory and removes
// the directory afterwards, whether the function returns normally, returns an
// error or panics:
//
//	err := paths.WithTempDir(func(dir string) error {
//	    return build(dir)
//	}, paths.WithPrefix("build_"))
//
// NewTempDir and ProjectPath's companion TempPath return a live *TempDir
// handle instead; the caller owns it and must call Remove.
//
// # Errors
//
// Failures are reported as errors.Error values from
// github.com/jmgilman/go/paths/errors. Use errors.IsNotFound and
// errors.IsFilesystem to distinguish a missing file from other filesystem
// failures.
package paths
