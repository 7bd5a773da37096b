package fstest

import (
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// linker is implemented by providers that can create links for testing.
type linker interface {
	Symlink(oldname, newname string) error
}

// TestSymlinkFS tests Lstat and Readlink.
// Skips if the filesystem does not implement core.SymlinkFS or cannot create
// links.
func TestSymlinkFS(t *testing.T, filesystem core.FS, root string) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
		return
	}
	lfs, ok := filesystem.(linker)
	if !ok {
		t.Skip("provider cannot create symbolic links")
		return
	}

	target := path.Join(root, "target")
	link := path.Join(root, "link")
	if err := filesystem.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", target, err)
	}
	if err := lfs.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%q, %q): setup failed: %v", target, link, err)
	}

	info, err := sfs.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%q): got error %v, want nil", link, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%q).Mode(): got %v, want symlink", link, info.Mode())
	}

	got, err := sfs.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%q): got error %v, want nil", link, err)
	}
	if got != target {
		t.Errorf("Readlink(%q): got %q, want %q", link, got, target)
	}

	stat, err := filesystem.Stat(link)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", link, err)
	}
	if !stat.IsDir() {
		t.Errorf("Stat(%q).IsDir(): got false, want true (Stat follows links)", link)
	}
}
