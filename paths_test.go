package paths

import (
	"sync/atomic"
	"testing"

	"github.com/jmgilman/go/paths/fs/billy"
	"github.com/jmgilman/go/paths/fs/core"
	"github.com/stretchr/testify/require"
)

const memWorkDir = "/work"

// newMemory returns helpers over an in-memory filesystem whose working
// directory is memWorkDir.
func newMemory(t *testing.T, opts ...Option) (*Paths, *billy.FS) {
	t.Helper()

	mem := billy.NewMemory()
	require.NoError(t, mem.MkdirAll(memWorkDir, 0o755))

	opts = append([]Option{
		WithFS(mem),
		WithWorkDir(func() (string, error) { return memWorkDir, nil }),
	}, opts...)
	return New(opts...), mem
}

// countingFS records how often file contents are read.
type countingFS struct {
	core.FS
	reads atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.FS.ReadFile(name)
}

// plainFS hides the optional capabilities of the wrapped filesystem.
type plainFS struct {
	core.FS
}

func TestNew_Defaults(t *testing.T) {
	p := New()

	require.NotNil(t, p.FS())
	require.Equal(t, core.FSTypeLocal, p.FS().Type())
	require.Equal(t, DefaultDirPerm, p.dirPerm)
	require.NotNil(t, p.logger)
}

func TestCleanupPolicy_String(t *testing.T) {
	require.Equal(t, "recursive", CleanupRecursive.String())
	require.Equal(t, "flat", CleanupFlat.String())
	require.Equal(t, "unknown", CleanupPolicy(9).String())
}
