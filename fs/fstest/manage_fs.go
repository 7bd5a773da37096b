package fstest

import (
	"path"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// TestManageFS tests Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("RemoveFile", func(t *testing.T) {
		testManageFSRemoveFile(t, filesystem, root)
	})
	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		testManageFSRemoveNonEmpty(t, filesystem, root)
	})
	t.Run("RemoveAll", func(t *testing.T) {
		testManageFSRemoveAll(t, filesystem, root)
	})
	t.Run("RemoveAllNotExist", func(t *testing.T) {
		testManageFSRemoveAllNotExist(t, filesystem, root)
	})
}

func testManageFSRemoveFile(t *testing.T, filesystem core.FS, root string) {
	name := path.Join(root, "remove.txt")
	if err := filesystem.WriteFile(name, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}
	if err := filesystem.Remove(name); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", name, err)
	}
	if _, err := filesystem.Stat(name); !isNotExist(err) {
		t.Errorf("Stat(%q) after Remove: got error %v, want fs.ErrNotExist", name, err)
	}
	if err := filesystem.Remove(name); !isNotExist(err) {
		t.Errorf("Remove(%q) twice: got error %v, want fs.ErrNotExist", name, err)
	}
}

func testManageFSRemoveNonEmpty(t *testing.T, filesystem core.FS, root string) {
	dir := path.Join(root, "full")
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	if err := filesystem.WriteFile(path.Join(dir, "f"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := filesystem.Remove(dir); err == nil {
		t.Errorf("Remove(%q) non-empty: got nil error, want error", dir)
	}
}

func testManageFSRemoveAll(t *testing.T, filesystem core.FS, root string) {
	dir := path.Join(root, "tree")
	if err := filesystem.MkdirAll(path.Join(dir, "x", "y"), 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	for _, name := range []string{"top.txt", "x/mid.txt", "x/y/leaf.txt"} {
		if err := filesystem.WriteFile(path.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	if err := filesystem.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll(%q): got error %v, want nil", dir, err)
	}
	if ok, err := filesystem.Exists(dir); err != nil || ok {
		t.Errorf("Exists(%q) after RemoveAll: got (%v, %v), want (false, nil)", dir, ok, err)
	}
}

func testManageFSRemoveAllNotExist(t *testing.T, filesystem core.FS, root string) {
	name := path.Join(root, "never-created")
	if err := filesystem.RemoveAll(name); err != nil {
		t.Errorf("RemoveAll(%q): got error %v, want nil", name, err)
	}
}
