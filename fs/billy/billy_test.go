package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/paths/fs/core"
	"github.com/jmgilman/go/paths/fs/fstest"
)

// TestLocalFS_Conformance runs the provider suite against the real disk.
func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewLocal(WithTempDir(t.TempDir())), t.TempDir()
	})
}

// TestMemoryFS_Conformance runs the provider suite against memfs.
func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		fs := NewMemory()
		if err := fs.MkdirAll("/work", 0o755); err != nil {
			t.Fatalf("MkdirAll(/work): %v", err)
		}
		return fs, "/work"
	})
}

// TestConstructors verifies both constructors wire a backend and type.
func TestConstructors(t *testing.T) {
	local := NewLocal()
	if local.Unwrap() == nil {
		t.Fatal("NewLocal().Unwrap() returned nil")
	}
	if local.Type() != core.FSTypeLocal {
		t.Errorf("NewLocal().Type() = %v, want %v", local.Type(), core.FSTypeLocal)
	}
	if local.TempDir() != os.TempDir() {
		t.Errorf("NewLocal().TempDir() = %q, want %q", local.TempDir(), os.TempDir())
	}

	mem := NewMemory()
	if mem.Unwrap() == nil {
		t.Fatal("NewMemory().Unwrap() returned nil")
	}
	if mem.Type() != core.FSTypeMemory {
		t.Errorf("NewMemory().Type() = %v, want %v", mem.Type(), core.FSTypeMemory)
	}
	if mem.TempDir() != memoryTempDir {
		t.Errorf("NewMemory().TempDir() = %q, want %q", mem.TempDir(), memoryTempDir)
	}
}

// TestMemoryFS_WithTempDir verifies MkdirTemp creates the configured default.
func TestMemoryFS_WithTempDir(t *testing.T) {
	fs := NewMemory(WithTempDir("/scratch/tmp"))

	dir, err := fs.MkdirTemp("", "x-*")
	if err != nil {
		t.Fatalf("MkdirTemp() error = %v", err)
	}
	if !strings.HasPrefix(dir, "/scratch/tmp/x-") {
		t.Errorf("MkdirTemp() = %q, want prefix /scratch/tmp/x-", dir)
	}
}

// TestMkdirTemp_RejectsSeparator verifies patterns cannot escape dir.
func TestMkdirTemp_RejectsSeparator(t *testing.T) {
	fs := NewMemory()
	_, err := fs.MkdirTemp("", "a"+string(filepath.Separator)+"b")
	var pathErr *iofs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("MkdirTemp() error = %v, want *fs.PathError", err)
	}
}

// TestMkdirAll_NotDirError verifies the error reported for a file in the way.
func TestMkdirAll_NotDirError(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/a/file", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := fs.MkdirAll("/a/file/b", 0o755)
	if !errors.Is(err, core.ErrNotDir) {
		t.Errorf("MkdirAll() error = %v, want core.ErrNotDir", err)
	}
}

// TestLocalFS_Perm verifies created directories get the requested mode.
func TestLocalFS_Perm(t *testing.T) {
	fs := NewLocal()
	root := t.TempDir()

	nested := filepath.Join(root, "a", "b")
	if err := fs.MkdirAll(nested, 0o700); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	single := filepath.Join(root, "c")
	if err := fs.Mkdir(single, 0o750); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	temp, err := fs.MkdirTemp(root, "t-*")
	if err != nil {
		t.Fatalf("MkdirTemp() error = %v", err)
	}

	tests := []struct {
		path string
		want iofs.FileMode
	}{
		{filepath.Join(root, "a"), 0o700},
		{nested, 0o700},
		{single, 0o750},
		{temp, 0o700},
	}
	for _, tt := range tests {
		info, err := os.Stat(tt.path)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", tt.path, err)
		}
		if got := info.Mode().Perm(); got != tt.want {
			t.Errorf("Stat(%s).Mode().Perm() = %v, want %v", tt.path, got, tt.want)
		}
	}
}
