package paths

import (
	"sync"
	"time"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// LazyFile defers reading a file until its content is first requested and
// then serves the cached content for the lifetime of the value.
//
// A LazyFile is safe for concurrent use; concurrent first calls to Read
// perform a single read.
type LazyFile struct {
	path   string
	fs     core.FS
	abs    func(string) (string, error)
	logger *logging.Logger

	mu      sync.Mutex
	loaded  bool
	content string
}

// NewLazyFile returns a LazyFile for path. It performs no I/O; a relative
// path is made absolute against the working directory at the first Read.
func (p *Paths) NewLazyFile(path string) *LazyFile {
	return &LazyFile{
		path:   path,
		fs:     p.fs,
		abs:    p.abs,
		logger: p.logger,
	}
}

// Path returns the path the LazyFile was created with.
func (f *LazyFile) Path() string {
	return f.path
}

// Loaded reports whether the content has been read and cached.
func (f *LazyFile) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loaded
}

// Read returns the file content, reading it on the first successful call.
//
// A missing file is reported as a FileNotFoundError (errors.CodeNotFound).
// A failed read leaves the cache empty, so a later call tries again.
func (f *LazyFile) Read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loaded {
		return f.content, nil
	}

	name, err := f.abs(f.path)
	if err != nil {
		return "", err
	}

	started := time.Now()
	data, err := f.fs.ReadFile(name)
	if err != nil {
		err = errors.FromFS(err, "read", name)
		logging.LogOperation(f.logger, logging.OpLoadFile, name, started, err)
		return "", err
	}
	logging.LogOperation(f.logger, logging.OpLoadFile, name, started, nil)

	f.content = string(data)
	f.loaded = true
	return f.content, nil
}
