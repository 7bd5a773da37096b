// Package registry maps string keys to resolved absolute paths.
//
// A Registry is an in-memory store: paths are resolved when registered, the
// last registration for a key wins and entries are never deleted. Nothing is
// persisted; state lives as long as the Registry does.
//
// Default returns the process-wide Registry. It is created on first use and
// lives until the process exits. Code that needs isolation, tests in
// particular, should build its own with New and pass it around explicitly:
//
//	reg := registry.New()
//	if err := reg.Register("db", "/data/db"); err != nil {
//	    return err
//	}
//	dir, ok := reg.Lookup("db")
//
// # Manifests
//
// LoadManifest seeds a Registry from a YAML, JSON or CUE file:
//
//	# paths.yaml
//	paths:
//	  db: /data/db
//	  cache: ./cache   # relative to the manifest's directory
//
// Every manifest is validated against the same CUE schema before any entry is
// registered, so a bad manifest leaves the Registry untouched.
//
// # Thread Safety
//
// A Registry is safe for concurrent use by multiple goroutines.
package registry
