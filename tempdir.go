package paths

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// TempDir is a temporary directory owned by the caller that created it.
// Remove deletes it; Remove is safe to call more than once.
type TempDir struct {
	path    string
	fs      core.FS
	cleanup CleanupPolicy
	logger  *logging.Logger

	mu      sync.Mutex
	removed bool
}

// Path returns the resolved absolute path of the directory.
func (d *TempDir) Path() string {
	return d.path
}

// NewTempDir creates a uniquely named directory and returns a handle to it.
// The name is the prefix, a random string and the suffix; the directory is
// created under the WithParent directory or the filesystem's temporary
// location.
//
// The caller must call Remove when done. Prefer WithTempDir, which does so
// automatically.
func (p *Paths) NewTempDir(opts ...TempOption) (*TempDir, error) {
	cfg := newTempConfig(opts)

	if strings.Contains(cfg.suffix, "*") {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "temporary directory suffix must not contain '*'"), "suffix", cfg.suffix)
	}
	if strings.ContainsRune(cfg.prefix+cfg.suffix, filepath.Separator) {
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "temporary directory prefix and suffix must not contain a path separator"),
			"pattern", cfg.prefix+"*"+cfg.suffix)
	}

	tfs, ok := p.fs.(core.TempFS)
	if !ok {
		return nil, errors.WrapWithContext(core.ErrUnsupported, errors.CodeFilesystem,
			"filesystem cannot create temporary directories", map[string]any{"fs_type": p.fs.Type().String()})
	}

	parent := cfg.parent
	if parent != "" {
		var err error
		if parent, err = p.Resolve(parent); err != nil {
			return nil, err
		}
	}

	started := time.Now()
	created, err := tfs.MkdirTemp(parent, cfg.prefix+"*"+cfg.suffix)
	if err != nil {
		if parent == "" {
			parent = tfs.TempDir()
		}
		err = errors.FromFS(err, "create temporary directory in", parent)
		logging.LogOperation(p.logger, logging.OpCreateTemp, parent, started, err)
		return nil, err
	}

	// the temp location itself may sit behind a link
	resolved, err := p.Resolve(created)
	if err != nil {
		_ = p.fs.RemoveAll(created)
		return nil, err
	}
	logging.LogOperation(p.logger, logging.OpCreateTemp, resolved, started, nil)

	return &TempDir{
		path:    resolved,
		fs:      p.fs,
		cleanup: cfg.cleanup,
		logger:  p.logger.WithPath(resolved),
	}, nil
}

// WithTempDir creates a temporary directory, calls fn with its path and
// removes the directory afterwards. Removal happens on every exit path:
// normal return, error return and panic (the panic is re-raised after
// cleanup).
//
// If fn succeeds but cleanup fails, the cleanup error is returned. If both
// fail, the returned error joins fn's error followed by the cleanup error, so
// errors.Is matches either one.
//
// Example:
//
//	err := p.WithTempDir(func(dir string) error {
//	    return os.WriteFile(filepath.Join(dir, "out.txt"), data, 0o644)
//	}, paths.WithPrefix("render_"))
func (p *Paths) WithTempDir(fn func(dir string) error, opts ...TempOption) (err error) {
	dir, err := p.NewTempDir(opts...)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if cerr := dir.Remove(); cerr != nil {
				dir.logger.Error("cleanup after panic failed", "error", cerr.Error())
			}
			panic(r)
		}

		cerr := dir.Remove()
		switch {
		case cerr == nil:
		case err == nil:
			err = cerr
		default:
			err = errors.Join(err, cerr)
		}
	}()

	return fn(dir.Path())
}

// Remove deletes the directory according to its cleanup policy.
// After a successful call further calls return nil. A failed call leaves the
// handle live so Remove can be retried.
func (d *TempDir) Remove() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.removed {
		return nil
	}

	started := time.Now()
	var err error
	switch d.cleanup {
	case CleanupFlat:
		err = d.removeFlat()
	default:
		if rerr := d.fs.RemoveAll(d.path); rerr != nil {
			err = errors.FromFS(rerr, "remove", d.path)
		}
	}
	logging.LogOperation(d.logger, logging.OpCleanupTemp, d.path, started, err)

	if err != nil {
		return err
	}
	d.removed = true
	return nil
}

// removeFlat deletes the immediate children of the directory, then the
// directory. It does not descend into subdirectories.
func (d *TempDir) removeFlat() error {
	entries, err := d.fs.ReadDir(d.path)
	if err != nil {
		return errors.FromFS(err, "list", d.path)
	}

	for _, entry := range entries {
		name := filepath.Join(d.path, entry.Name())
		if err := d.fs.Remove(name); err != nil {
			if entry.IsDir() {
				return errors.WrapWithContext(err, errors.CodeFilesystem,
					"flat cleanup cannot remove a non-empty subdirectory", map[string]any{
						"path":   name,
						"policy": CleanupFlat.String(),
					})
			}
			return errors.FromFS(err, "remove", name)
		}
	}

	if err := d.fs.Remove(d.path); err != nil {
		return errors.FromFS(err, "remove", d.path)
	}
	return nil
}
