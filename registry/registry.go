package registry

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jmgilman/go/paths"
	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/internal/logging"
)

// Registry is a concurrency-safe mapping from keys to resolved paths.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]string
	resolver *paths.Paths
	logger   *logging.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithResolver sets the helpers used to resolve registered paths and read
// manifests. Defaults to paths.New().
func WithResolver(p *paths.Paths) Option {
	return func(r *Registry) {
		r.resolver = p
	}
}

// WithFS resolves paths and reads manifests on filesystem.
// It is shorthand for WithResolver(paths.New(paths.WithFS(filesystem))).
func WithFS(filesystem core.FS) Option {
	return WithResolver(paths.New(paths.WithFS(filesystem)))
}

// WithLogger enables structured logging of registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logging.New(logger)
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]string),
		logger:  logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.resolver == nil {
		r.resolver = paths.New()
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide Registry, creating it on first use.
// Every call returns the same instance; it is never torn down.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register resolves path to its absolute form and stores it under key,
// replacing any earlier entry for key.
func (r *Registry) Register(key, path string) error {
	if key == "" {
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "registry key is empty"), "path", path)
	}

	started := time.Now()
	resolved, err := r.resolver.Resolve(path)
	if err != nil {
		err = errors.WithContext(err, "key", key)
		logging.LogOperation(r.logger, logging.OpRegister, path, started, err)
		return err
	}

	r.mu.Lock()
	r.entries[key] = resolved
	r.mu.Unlock()

	logging.LogOperation(r.logger.With("key", key), logging.OpRegister, resolved, started, nil)
	return nil
}

// Lookup returns the path registered under key. The boolean is false if key
// was never registered.
func (r *Registry) Lookup(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, ok := r.entries[key]
	return path, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// setAll stores already resolved entries under a single lock.
func (r *Registry) setAll(entries map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range entries {
		r.entries[k] = v
	}
}
