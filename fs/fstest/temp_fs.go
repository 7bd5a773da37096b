package fstest

import (
	"path"
	"strings"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// TestTempFS tests MkdirTemp.
// Skips if the filesystem does not implement core.TempFS.
func TestTempFS(t *testing.T, filesystem core.FS, root string) {
	tfs, ok := filesystem.(core.TempFS)
	if !ok {
		t.Skip("TempFS not supported")
		return
	}

	t.Run("PrefixAndSuffix", func(t *testing.T) {
		testTempFSPattern(t, filesystem, tfs, root)
	})
	t.Run("Unique", func(t *testing.T) {
		testTempFSUnique(t, tfs, root)
	})
	t.Run("DefaultDir", func(t *testing.T) {
		testTempFSDefaultDir(t, filesystem, tfs)
	})
}

func testTempFSPattern(t *testing.T, filesystem core.FS, tfs core.TempFS, root string) {
	dir, err := tfs.MkdirTemp(root, "pre-*-suf")
	if err != nil {
		t.Fatalf("MkdirTemp(%q, %q): got error %v, want nil", root, "pre-*-suf", err)
	}

	if path.Dir(dir) != path.Clean(root) {
		t.Errorf("MkdirTemp: got parent %q, want %q", path.Dir(dir), root)
	}
	base := path.Base(dir)
	if !strings.HasPrefix(base, "pre-") || !strings.HasSuffix(base, "-suf") {
		t.Errorf("MkdirTemp: got name %q, want pre-*-suf", base)
	}

	info, err := filesystem.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q).IsDir(): got false, want true", dir)
	}
}

func testTempFSUnique(t *testing.T, tfs core.TempFS, root string) {
	seen := make(map[string]bool)
	for range 20 {
		dir, err := tfs.MkdirTemp(root, "u")
		if err != nil {
			t.Fatalf("MkdirTemp(%q, %q): got error %v, want nil", root, "u", err)
		}
		if seen[dir] {
			t.Fatalf("MkdirTemp returned %q twice", dir)
		}
		seen[dir] = true
	}
}

func testTempFSDefaultDir(t *testing.T, filesystem core.FS, tfs core.TempFS) {
	dir, err := tfs.MkdirTemp("", "default-*")
	if err != nil {
		t.Fatalf("MkdirTemp(%q, %q): got error %v, want nil", "", "default-*", err)
	}
	defer func() { _ = filesystem.RemoveAll(dir) }()

	if path.Dir(dir) != path.Clean(tfs.TempDir()) {
		t.Errorf("MkdirTemp: got parent %q, want TempDir() %q", path.Dir(dir), tfs.TempDir())
	}
}
