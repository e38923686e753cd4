package appdir_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/verline/internal/appdir"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir, err := appdir.ConfigDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir), "expected absolute path, got %q", dir)
	assert.Equal(t, appdir.Name, filepath.Base(dir))
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := appdir.ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, appdir.Name, filepath.Base(filepath.Dir(path)))
}

func TestEnsureFile_CreatesFileAndDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.yaml")

	require.NoError(t, appdir.EnsureFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnsureFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("banner: true\n"), 0o600))

	require.NoError(t, appdir.EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "banner: true\n", string(data))
}
