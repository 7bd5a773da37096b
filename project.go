package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/jmgilman/go/paths/errors"
)

// ProjectPath returns the resolved directory for project name under base,
// creating it and any missing parents. Calling it again with the same
// arguments returns the same path.
//
// An empty base selects the XDG data home directory. The name must be a
// relative path that stays inside base.
//
// Example:
//
//	root, err := p.ProjectPath("/srv/projects", "api")
func (p *Paths) ProjectPath(base, name string) (string, error) {
	if err := validateProjectName(name); err != nil {
		return "", err
	}
	if base == "" {
		base = xdg.DataHome
	}

	dir, err := p.Join(base, name)
	if err != nil {
		return "", err
	}
	if err := p.EnsureDir(dir); err != nil {
		return "", err
	}

	p.logger.Debug("project path ready", "base", base, "project", name, "path", dir)
	return dir, nil
}

// TempPath creates a temporary directory named prefix + random + suffix under
// base (or the filesystem's temporary location when base is empty) and
// returns the live handle. The caller owns the directory and must call
// Remove on the handle.
func (p *Paths) TempPath(prefix, suffix, base string) (*TempDir, error) {
	return p.NewTempDir(WithPrefix(prefix), WithSuffix(suffix), WithParent(base))
}

func validateProjectName(name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidInput, "project name is empty")
	}
	if filepath.IsAbs(name) {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "project name must be relative"), "project", name)
	}
	clean := filepath.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.WithContext(
			errors.New(errors.CodeInvalidInput, "project name must stay inside the base directory"), "project", name)
	}
	return nil
}
