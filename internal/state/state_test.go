package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mpm/internal/paths"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "state.toml"))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Project.Root)
}

func TestStore_RememberAndForget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")
	s := NewStore(path)

	require.NoError(t, s.Remember("/work/MyApp"))

	root, err := s.Root()
	require.NoError(t, err)
	assert.Equal(t, "/work/MyApp", root)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[project]")
	assert.Contains(t, string(data), "/work/MyApp")

	require.NoError(t, s.Forget())
	root, err = s.Root()
	require.NoError(t, err)
	assert.Empty(t, root)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project\nroot ="), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)

	assert.Error(t, NewStore(path).Remember("/x"))
}

func TestDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvStateDir, dir)

	s := Default()
	assert.Equal(t, filepath.Join(dir, "state.toml"), s.Path())
}
