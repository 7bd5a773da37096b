package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/billy"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// Paths bundles the path helpers with the filesystem they act on.
// A Paths is safe for concurrent use if its filesystem is.
type Paths struct {
	fs      core.FS
	logger  *logging.Logger
	dirPerm fs.FileMode
	getwd   func() (string, error)
}

// New creates a Paths. Without options it uses the local filesystem, no
// logging, DefaultDirPerm and the process working directory.
func New(opts ...Option) *Paths {
	p := &Paths{
		logger:  logging.NewNopLogger(),
		dirPerm: DefaultDirPerm,
		getwd:   os.Getwd,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fs == nil {
		p.fs = billy.NewLocal()
	}
	return p
}

// FS returns the filesystem the helpers operate on.
func (p *Paths) FS() core.FS {
	return p.fs
}

// abs anchors path at the working directory and cleans it without touching
// the filesystem.
func (p *Paths) abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := p.workDir(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

// workDir returns the directory relative path is anchored at.
func (p *Paths) workDir(path string) (string, error) {
	wd, err := p.getwd()
	if err != nil {
		return "", errors.WrapWithContext(err, errors.CodeFilesystem, "failed to determine working directory",
			map[string]any{"path": path})
	}
	return wd, nil
}

var std = New()

// Join joins parts and resolves the result using the local filesystem.
// See (*Paths).Join.
func Join(parts ...string) (string, error) {
	return std.Join(parts...)
}

// Resolve resolves path using the local filesystem. See (*Paths).Resolve.
func Resolve(path string) (string, error) {
	return std.Resolve(path)
}

// EnsureDir creates path and any missing parents on the local filesystem.
// See (*Paths).EnsureDir.
func EnsureDir(path string) error {
	return std.EnsureDir(path)
}

// Exists reports whether path exists on the local filesystem.
// See (*Paths).Exists.
func Exists(path string) (bool, error) {
	return std.Exists(path)
}

// NewTempDir creates a temporary directory on the local filesystem.
// See (*Paths).NewTempDir.
func NewTempDir(opts ...TempOption) (*TempDir, error) {
	return std.NewTempDir(opts...)
}

// WithTempDir runs fn inside a temporary directory on the local filesystem.
// See (*Paths).WithTempDir.
func WithTempDir(fn func(dir string) error, opts ...TempOption) error {
	return std.WithTempDir(fn, opts...)
}

// NewLazyFile returns a lazily loaded file on the local filesystem.
// See (*Paths).NewLazyFile.
func NewLazyFile(path string) *LazyFile {
	return std.NewLazyFile(path)
}

// ProjectPath creates a project directory on the local filesystem.
// See (*Paths).ProjectPath.
func ProjectPath(base, name string) (string, error) {
	return std.ProjectPath(base, name)
}

// TempPath creates a temporary directory on the local filesystem.
// See (*Paths).TempPath.
func TempPath(prefix, suffix, base string) (*TempDir, error) {
	return std.TempPath(prefix, suffix, base)
}
