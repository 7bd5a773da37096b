package paths

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// DefaultDirPerm is the permission used for directories created by EnsureDir.
const DefaultDirPerm fs.FileMode = 0o755

// DefaultTempPrefix is the name prefix of temporary directories.
const DefaultTempPrefix = "tmp_"

// Option configures a Paths.
type Option func(*Paths)

// WithFS sets the filesystem all helpers operate on.
//
// Example:
//
//	p := paths.New(paths.WithFS(billy.NewMemory()))
func WithFS(filesystem core.FS) Option {
	return func(p *Paths) {
		p.fs = filesystem
	}
}

// WithLogger enables structured logging of filesystem operations.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Paths) {
		p.logger = logging.New(logger)
	}
}

// WithDirPerm sets the permission bits of directories created by EnsureDir
// and ProjectPath.
func WithDirPerm(perm fs.FileMode) Option {
	return func(p *Paths) {
		p.dirPerm = perm
	}
}

// WithWorkDir sets the function used to anchor relative paths. Defaults to
// os.Getwd.
func WithWorkDir(getwd func() (string, error)) Option {
	return func(p *Paths) {
		p.getwd = getwd
	}
}

// CleanupPolicy selects how a temporary directory is removed.
type CleanupPolicy int

const (
	// CleanupRecursive removes the directory and everything below it.
	CleanupRecursive CleanupPolicy = iota

	// CleanupFlat removes files and empty subdirectories directly inside the
	// directory, then the directory itself. A nested non-empty subdirectory
	// makes cleanup fail with CodeFilesystem.
	CleanupFlat
)

// String returns a string representation of the CleanupPolicy.
func (c CleanupPolicy) String() string {
	switch c {
	case CleanupRecursive:
		return "recursive"
	case CleanupFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// TempOption configures temporary directory creation.
type TempOption func(*tempConfig)

type tempConfig struct {
	prefix  string
	suffix  string
	parent  string
	cleanup CleanupPolicy
}

func newTempConfig(opts []TempOption) tempConfig {
	cfg := tempConfig{
		prefix:  DefaultTempPrefix,
		cleanup: CleanupRecursive,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPrefix sets the name prefix. Defaults to DefaultTempPrefix.
func WithPrefix(prefix string) TempOption {
	return func(c *tempConfig) {
		c.prefix = prefix
	}
}

// WithSuffix sets the name suffix.
func WithSuffix(suffix string) TempOption {
	return func(c *tempConfig) {
		c.suffix = suffix
	}
}

// WithParent sets the directory the temporary directory is created in.
// Defaults to the filesystem's temporary location.
func WithParent(dir string) TempOption {
	return func(c *tempConfig) {
		c.parent = dir
	}
}

// WithCleanup selects the cleanup policy. Defaults to CleanupRecursive.
func WithCleanup(policy CleanupPolicy) TempOption {
	return func(c *tempConfig) {
		c.cleanup = policy
	}
}
