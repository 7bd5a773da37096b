package paths

import (
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/core"
)

// maxLinkHops bounds symbolic link expansion during resolution.
const maxLinkHops = 255

// Join joins parts and resolves the result. A part that is an absolute
// path discards everything before it, and empty parts are ignored. Calling
// Join with no parts resolves the working directory.
//
// Example:
//
//	dir, err := p.Join("data", "..", "cache", "v1") // "<cwd>/cache/v1"
func (p *Paths) Join(parts ...string) (string, error) {
	var joined string
	for _, part := range parts {
		switch {
		case part == "":
		case filepath.IsAbs(part) || joined == "":
			joined = part
		default:
			joined += string(filepath.Separator) + part
		}
	}
	return p.Resolve(joined)
}

// Resolve returns the absolute form of path with "." and ".." segments and
// symbolic links eliminated.
//
// Every link met along the way is followed, including links reached by a
// ".." that climbs out of a missing directory. Missing components are
// appended as written, so a missing path is not an error. If the filesystem
// does not implement core.SymlinkFS the result is purely lexical.
func (p *Paths) Resolve(path string) (string, error) {
	if path == "" {
		path = "."
	}
	// ".." is applied after links are expanded, so the path is not cleaned
	// before walking it
	if !filepath.IsAbs(path) {
		wd, err := p.workDir(path)
		if err != nil {
			return "", err
		}
		path = wd + string(filepath.Separator) + path
	}

	sfs, ok := p.fs.(core.SymlinkFS)
	if !ok {
		return filepath.Clean(path), nil
	}
	return evalSymlinks(sfs, path)
}

// evalSymlinks walks an absolute path component by component, expanding
// every link it meets. Missing components are appended unchanged.
func evalSymlinks(sfs core.SymlinkFS, path string) (string, error) {
	const sep = string(filepath.Separator)

	vol := filepath.VolumeName(path)
	resolved := vol + sep
	rest := path[len(vol):]
	hops := 0

	for {
		rest = strings.TrimLeft(rest, sep)
		if rest == "" {
			return resolved, nil
		}

		name := rest
		if i := strings.Index(rest, sep); i >= 0 {
			name, rest = rest[:i], rest[i:]
		} else {
			rest = ""
		}

		switch name {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, name)
		// missing components are kept as written; a later ".." may climb
		// back into existing directories
		info, err := sfs.Lstat(next)
		if err != nil {
			if !isMissing(err) {
				return "", errors.FromFS(err, "resolve", next)
			}
			resolved = next
			continue
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", errors.WithContext(
				errors.New(errors.CodeFilesystem, "too many levels of symbolic links"), "path", path)
		}

		target, err := sfs.Readlink(next)
		if err != nil {
			return "", errors.FromFS(err, "readlink", next)
		}
		if filepath.IsAbs(target) {
			tvol := filepath.VolumeName(target)
			resolved = tvol + sep
			target = target[len(tvol):]
		}
		// relative targets are expanded against the link's directory
		rest = target + rest
	}
}

// isMissing reports whether err means an entry does not exist, including a
// regular file standing in for one of its parent directories.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
