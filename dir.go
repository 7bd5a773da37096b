package paths

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// EnsureDir creates the directory at path along with any missing parents.
// It succeeds without doing anything if the directory already exists.
// Directories it creates get the configured permission exactly.
//
// A non-directory occupying path or one of its ancestors, or a permission
// failure, is reported as a FilesystemError. A dangling symbolic link at
// path counts as an occupying entry (errors.CodeAlreadyExists); its target
// is not created.
func (p *Paths) EnsureDir(path string) error {
	started := time.Now()
	if err := p.checkDanglingLink(path); err != nil {
		logging.LogOperation(p.logger, logging.OpEnsureDir, path, started, err)
		return err
	}

	dir, err := p.Resolve(path)
	if err != nil {
		return err
	}

	err = p.fs.MkdirAll(dir, p.dirPerm)
	if err != nil {
		err = errors.FromFS(err, "create directory", dir)
		if errors.IsNotFound(err) {
			// a dangling link in the way, not a missing input
			err = errors.Wrap(err, errors.CodeFilesystem, "failed to create directory")
		}
	}
	logging.LogOperation(p.logger, logging.OpEnsureDir, dir, started, err)
	return err
}

// checkDanglingLink fails if path itself is a symbolic link whose target
// does not exist.
func (p *Paths) checkDanglingLink(path string) error {
	sfs, ok := p.fs.(core.SymlinkFS)
	if !ok {
		return nil
	}
	name, err := p.abs(path)
	if err != nil {
		return err
	}

	info, err := sfs.Lstat(name)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return nil
	}
	if _, err := p.fs.Stat(name); err == nil || !isMissing(err) {
		return nil
	}
	return errors.FromFS(&fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}, "create directory", name)
}

// Exists reports whether any entry exists at path. Symbolic links are
// followed, so a dangling link does not exist.
//
// A missing entry yields false and a nil error. Failures that leave existence
// undetermined, such as permission errors, are returned.
func (p *Paths) Exists(path string) (bool, error) {
	name, err := p.abs(path)
	if err != nil {
		return false, err
	}

	ok, err := p.fs.Exists(name)
	if err != nil {
		if isMissing(err) {
			return false, nil
		}
		return false, errors.FromFS(err, "stat", name)
	}
	return ok, nil
}
