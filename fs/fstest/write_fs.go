package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// TestWriteFS tests WriteFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		testWriteFSTruncate(t, filesystem, root)
	})
	t.Run("Mkdir", func(t *testing.T) {
		testWriteFSMkdir(t, filesystem, root)
	})
	t.Run("MkdirAllIdempotent", func(t *testing.T) {
		testWriteFSMkdirAll(t, filesystem, root)
	})
	t.Run("MkdirAllOverFile", func(t *testing.T) {
		testWriteFSMkdirAllOverFile(t, filesystem, root)
	})
}

func testWriteFSTruncate(t *testing.T, filesystem core.FS, root string) {
	name := path.Join(root, "truncate.txt")
	if err := filesystem.WriteFile(name, []byte("long content"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	if err := filesystem.WriteFile(name, []byte("short"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if string(got) != "short" {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, "short")
	}
}

func testWriteFSMkdir(t *testing.T, filesystem core.FS, root string) {
	dir := path.Join(root, "single")
	if err := filesystem.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(%q): got error %v, want nil", dir, err)
	}
	if err := filesystem.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(%q) twice: got error %v, want fs.ErrExist", dir, err)
	}

	orphan := path.Join(root, "no-parent", "child")
	if err := filesystem.Mkdir(orphan, 0o755); err == nil {
		t.Errorf("Mkdir(%q) without parent: got nil error, want error", orphan)
	}
}

func testWriteFSMkdirAll(t *testing.T, filesystem core.FS, root string) {
	dir := path.Join(root, "a", "b", "c")
	for i := range 2 {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%q) call %d: got error %v, want nil", dir, i+1, err)
		}
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q).IsDir(): got false, want true", dir)
		}
	}
}

func testWriteFSMkdirAllOverFile(t *testing.T, filesystem core.FS, root string) {
	file := path.Join(root, "occupied")
	if err := filesystem.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	if err := filesystem.MkdirAll(file, 0o755); err == nil {
		t.Errorf("MkdirAll(%q) over file: got nil error, want error", file)
	}
	if err := filesystem.MkdirAll(path.Join(file, "child"), 0o755); err == nil {
		t.Errorf("MkdirAll(%q) below file: got nil error, want error", path.Join(file, "child"))
	}
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
