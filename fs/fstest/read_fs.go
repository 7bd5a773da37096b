package fstest

import (
	"bytes"
	"path"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
)

// TestReadFS tests Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS, root string) {
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, root)
	})
	t.Run("ReadFileNotExist", func(t *testing.T) {
		testReadFSReadFileNotExist(t, filesystem, root)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem, root)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem, root)
	})
}

func testReadFSReadFile(t *testing.T, filesystem core.FS, root string) {
	name := path.Join(root, "read.txt")
	want := []byte("hello")
	if err := filesystem.WriteFile(name, want, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, want)
	}

	info, err := filesystem.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", name, err)
	}
	if info.IsDir() {
		t.Errorf("Stat(%q).IsDir(): got true, want false", name)
	}
	if info.Size() != int64(len(want)) {
		t.Errorf("Stat(%q).Size(): got %d, want %d", name, info.Size(), len(want))
	}
}

func testReadFSReadFileNotExist(t *testing.T, filesystem core.FS, root string) {
	name := path.Join(root, "missing.txt")
	if _, err := filesystem.ReadFile(name); !isNotExist(err) {
		t.Errorf("ReadFile(%q): got error %v, want fs.ErrNotExist", name, err)
	}
	if _, err := filesystem.Stat(name); !isNotExist(err) {
		t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
	}
}

func testReadFSReadDir(t *testing.T, filesystem core.FS, root string) {
	dir := path.Join(root, "listing")
	if err := filesystem.MkdirAll(path.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := filesystem.WriteFile(path.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%q): got error %v, want nil", dir, err)
	}

	want := []string{"a.txt", "b.txt", "sub"}
	if len(entries) != len(want) {
		t.Fatalf("ReadDir(%q): got %d entries, want %d", dir, len(entries), len(want))
	}
	for i, entry := range entries {
		if entry.Name() != want[i] {
			t.Errorf("ReadDir(%q)[%d]: got %q, want %q", dir, i, entry.Name(), want[i])
		}
		if isDir := entry.Name() == "sub"; entry.IsDir() != isDir {
			t.Errorf("ReadDir(%q)[%d].IsDir(): got %v, want %v", dir, i, entry.IsDir(), isDir)
		}
	}
}

func testReadFSExists(t *testing.T, filesystem core.FS, root string) {
	file := path.Join(root, "exists.txt")
	if err := filesystem.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file, err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"file", file, true},
		{"directory", root, true},
		{"missing", path.Join(root, "nope"), false},
		{"below a file", path.Join(file, "child"), false},
	}

	for _, tt := range tests {
		got, err := filesystem.Exists(tt.path)
		if err != nil {
			t.Errorf("Exists(%q) [%s]: got error %v, want nil", tt.path, tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Exists(%q) [%s]: got %v, want %v", tt.path, tt.name, got, tt.want)
		}
	}
}
