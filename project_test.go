package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/jmgilman/go/paths/errors"
	"github.com/stretchr/testify/require"
)

func TestProjectPath(t *testing.T) {
	p, _ := newMemory(t)

	first, err := p.ProjectPath("/srv", "proj")
	require.NoError(t, err)
	require.Equal(t, "/srv/proj", first)

	ok, err := p.Exists(first)
	require.NoError(t, err)
	require.True(t, ok)

	second, err := p.ProjectPath("/srv", "proj")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestProjectPath_RelativeBase(t *testing.T) {
	p, _ := newMemory(t)

	got, err := p.ProjectPath("projects/../builds", "nested/app")
	require.NoError(t, err)
	require.Equal(t, "/work/builds/nested/app", got)
}

func TestProjectPath_DefaultBase(t *testing.T) {
	p, _ := newMemory(t)

	got, err := p.ProjectPath("", "proj")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Clean(xdg.DataHome), "proj"), got)
}

func TestProjectPath_InvalidName(t *testing.T) {
	p, _ := newMemory(t)

	for _, name := range []string{"", ".", "..", "../escape", "a/../..", "/abs"} {
		t.Run(name, func(t *testing.T) {
			_, err := p.ProjectPath("/srv", name)
			require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestProjectPath_FileInTheWay(t *testing.T) {
	p, mem := newMemory(t)
	require.NoError(t, mem.WriteFile("/srv/proj", []byte("x"), 0o644))

	_, err := p.ProjectPath("/srv", "proj")
	require.True(t, errors.IsFilesystem(err), "got %v", err)
}

func TestTempPath_IsLive(t *testing.T) {
	p, _ := newMemory(t)
	require.NoError(t, p.EnsureDir("/base"))

	dir, err := p.TempPath("pre_", "_suf", "/base")
	require.NoError(t, err)

	ok, err := p.Exists(dir.Path())
	require.NoError(t, err)
	require.True(t, ok, "temporary directory must exist until Remove")

	base := filepath.Base(dir.Path())
	require.True(t, strings.HasPrefix(base, "pre_"))
	require.True(t, strings.HasSuffix(base, "_suf"))
	require.Equal(t, "/base", filepath.Dir(dir.Path()))

	require.NoError(t, dir.Remove())
	requireGone(t, p, dir.Path())
}
