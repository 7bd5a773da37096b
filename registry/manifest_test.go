package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/fs/billy"
)

func writeManifest(t *testing.T, mem *billy.FS, name, content string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll("/etc/app", 0o755))
	require.NoError(t, mem.WriteFile(name, []byte(content), 0o644))
}

func TestLoadManifest(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "/etc/app/paths.yaml",
			content: `paths:
  db: /data/db
  cache: cache
  logs: ../logs
`,
		},
		{
			name:    "yml",
			file:    "/etc/app/paths.yml",
			content: "paths: {db: /data/db, cache: ./cache, logs: ../logs}\n",
		},
		{
			name: "cue",
			file: "/etc/app/paths.cue",
			content: `paths: {
	db:    "/data/db"
	cache: "cache"
	logs:  "../logs"
}
`,
		},
		{
			name:    "json",
			file:    "/etc/app/paths.json",
			content: `{"paths": {"db": "/data/db", "cache": "cache", "logs": "../logs"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, mem := newMemory(t)
			writeManifest(t, mem, tt.file, tt.content)

			require.NoError(t, reg.LoadManifest(tt.file))

			assert.Equal(t, []string{"cache", "db", "logs"}, reg.Keys())

			db, _ := reg.Lookup("db")
			assert.Equal(t, "/data/db", db)

			cache, _ := reg.Lookup("cache")
			assert.Equal(t, "/etc/app/cache", cache)

			logs, _ := reg.Lookup("logs")
			assert.Equal(t, "/etc/logs", logs)
		})
	}
}

func TestLoadManifest_RelativeManifestPath(t *testing.T) {
	reg, mem := newMemory(t)
	require.NoError(t, mem.WriteFile("/work/paths.yaml", []byte("paths:\n  db: data\n"), 0o644))

	require.NoError(t, reg.LoadManifest("paths.yaml"))

	got, ok := reg.Lookup("db")
	require.True(t, ok)
	assert.Equal(t, "/work/data", got)
}

func TestLoadManifest_Empty(t *testing.T) {
	reg, mem := newMemory(t)
	writeManifest(t, mem, "/etc/app/paths.yaml", "")

	require.NoError(t, reg.LoadManifest("/etc/app/paths.yaml"))
	assert.Zero(t, reg.Len())
}

func TestLoadManifest_Overwrites(t *testing.T) {
	reg, mem := newMemory(t)
	require.NoError(t, reg.Register("db", "/old/db"))
	writeManifest(t, mem, "/etc/app/paths.yaml", "paths:\n  db: /new/db\n")

	require.NoError(t, reg.LoadManifest("/etc/app/paths.yaml"))

	got, _ := reg.Lookup("db")
	assert.Equal(t, "/new/db", got)
}

func TestLoadManifest_Missing(t *testing.T) {
	reg, _ := newMemory(t)

	err := reg.LoadManifest("/etc/app/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown yaml field", file: "/etc/app/paths.yaml", content: "dirs:\n  db: /data/db\n"},
		{name: "malformed yaml", file: "/etc/app/paths.yaml", content: "paths: [unterminated\n"},
		{name: "empty yaml value", file: "/etc/app/paths.yaml", content: "paths:\n  db: \"\"\n"},
		{name: "cue syntax", file: "/etc/app/paths.cue", content: "paths: {db: \n"},
		{name: "cue non-string", file: "/etc/app/paths.cue", content: "paths: db: 42\n"},
		{name: "cue extra field", file: "/etc/app/paths.cue", content: "paths: db: \"/data\"\nversion: 1\n"},
		{name: "cue incomplete", file: "/etc/app/paths.cue", content: "paths: db: string\n"},
		{name: "unsupported extension", file: "/etc/app/paths.toml", content: "[paths]\ndb = \"/data\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, mem := newMemory(t)
			require.NoError(t, reg.Register("keep", "/data/keep"))
			writeManifest(t, mem, tt.file, tt.content)

			err := reg.LoadManifest(tt.file)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
			assert.Equal(t, []string{"keep"}, reg.Keys())
		})
	}
}

func TestDecodeManifest_SchemaAppliesToYAML(t *testing.T) {
	_, err := decodeManifest("paths.yaml", []byte("paths:\n  db: \"\"\n"))
	require.Error(t, err)

	m, err := decodeManifest("paths.yaml", []byte("paths:\n  db: /data/db\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"db": "/data/db"}, m.Paths)
}

func TestLoadManifest_ReportsIssues(t *testing.T) {
	reg, mem := newMemory(t)
	writeManifest(t, mem, "/etc/app/paths.cue", "paths: {db: 42, logs: \"\"}\n")

	err := reg.LoadManifest("/etc/app/paths.cue")
	require.Error(t, err)

	var pe errors.Error
	require.True(t, errors.As(err, &pe))
	issues, ok := pe.Context()["issues"].([]string)
	require.True(t, ok)
	assert.NotEmpty(t, issues)
	assert.Equal(t, "/etc/app/paths.cue", pe.Context()["path"])
}
