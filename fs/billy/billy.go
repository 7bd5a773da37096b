package billy

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/paths/fs/core"
)

// memoryTempDir is the default temporary directory of memory filesystems.
const memoryTempDir = "/tmp"

// maxTempAttempts bounds the name collisions MkdirTemp tolerates.
const maxTempAttempts = 10000

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs     billy.Filesystem
	fsType  core.FSType
	tempDir string
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	tempDir string
}

// WithTempDir overrides the default parent directory for MkdirTemp.
func WithTempDir(dir string) Option {
	return func(c *config) {
		c.tempDir = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
func NewLocal(opts ...Option) *FS {
	cfg := config{tempDir: os.TempDir()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{
		bfs:     osfs.New("/"),
		fsType:  core.FSTypeLocal,
		tempDir: cfg.tempDir,
	}
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
func NewMemory(opts ...Option) *FS {
	cfg := config{tempDir: memoryTempDir}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{
		bfs:     memfs.New(),
		fsType:  core.FSTypeMemory,
		tempDir: cfg.tempDir,
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the kind of storage backing this filesystem.
func (f *FS) Type() core.FSType {
	return f.fsType
}

// normalize converts paths to use forward slashes consistently.
// billy's chroot helper handles boundary checks.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// isMissing reports whether err means the entry does not exist, including a
// regular file standing in for one of its parent directories.
func isMissing(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns metadata for the named entry, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir returns the entries of the named directory sorted by name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	// billy returns []fs.FileInfo
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the whole named file.
func (f *FS) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(f.bfs, normalize(name))
}

// Exists reports whether the named entry exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if isMissing(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating or truncating it.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(f.bfs, normalize(name), data, perm)
}

// Mkdir creates a single directory with exactly perm.
// Unlike MkdirAll, this fails if the entry exists or the parent is missing.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		info, err := f.bfs.Stat(parent)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: core.ErrNotDir}
		}
	}
	// the parent exists, so this creates exactly one directory
	if err := f.bfs.MkdirAll(name, perm); err != nil {
		return err
	}
	return f.chmod(perm, name)
}

// MkdirAll creates a directory along with any missing parents.
// Directories it creates get exactly perm; existing ones are left alone.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	path = normalize(path)
	var created []string
	// memfs does not reject files in the ancestor chain, so check up front
	for dir := path; ; dir = filepath.Dir(dir) {
		info, err := f.bfs.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: core.ErrNotDir}
			}
			break
		}
		if !isMissing(err) {
			return err
		}
		created = append(created, dir)
		if next := filepath.Dir(dir); next == dir {
			break
		}
	}
	if err := f.bfs.MkdirAll(path, perm); err != nil {
		return err
	}
	return f.chmod(perm, created...)
}

// chmod sets perm on dirs of a local filesystem. osfs creates every
// directory with 0o755 regardless of the mode it is given; memfs keeps the
// requested mode.
func (f *FS) chmod(perm fs.FileMode, dirs ...string) error {
	if f.fsType != core.FSTypeLocal {
		return nil
	}
	// osfs.New may hand back a chroot wrapper without billy.Change; the local
	// root is "/", so names are host paths
	set := os.Chmod
	if ch, ok := f.bfs.(billy.Change); ok {
		set = ch.Chmod
	}
	for _, dir := range dirs {
		if err := set(filepath.FromSlash(dir), perm); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// RemoveAll removes path and everything below it.
func (f *FS) RemoveAll(path string) error {
	return util.RemoveAll(f.bfs, normalize(path))
}

// Lstat returns metadata without following a final symbolic link.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(normalize(name))
}

// Readlink returns the destination of the named symbolic link.
func (f *FS) Readlink(name string) (string, error) {
	return f.bfs.Readlink(normalize(name))
}

// Symlink creates newname as a symbolic link to oldname.
func (f *FS) Symlink(oldname, newname string) error {
	return f.bfs.Symlink(oldname, normalize(newname))
}

// TempDir returns the default parent for temporary directories.
func (f *FS) TempDir() string {
	return f.tempDir
}

// MkdirTemp creates a new uniquely named directory under dir.
func (f *FS) MkdirTemp(dir, pattern string) (string, error) {
	if dir == "" {
		dir = f.tempDir
		if err := f.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if strings.ContainsRune(pattern, filepath.Separator) {
		return "", &fs.PathError{Op: "mkdirtemp", Path: pattern, Err: errors.New("pattern contains path separator")}
	}

	prefix, suffix := pattern, ""
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		prefix, suffix = pattern[:i], pattern[i+1:]
	}

	for range maxTempAttempts {
		name := filepath.Join(dir, prefix+strconv.FormatUint(uint64(rand.Uint32()), 10)+suffix)
		err := f.Mkdir(name, 0o700)
		if err == nil {
			return normalize(name), nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
	}
	return "", &fs.PathError{Op: "mkdirtemp", Path: filepath.Join(dir, pattern), Err: fs.ErrExist}
}

// Compile-time interface checks.
var (
	_ core.FS        = (*FS)(nil)
	_ core.SymlinkFS = (*FS)(nil)
	_ core.TempFS    = (*FS)(nil)
)
