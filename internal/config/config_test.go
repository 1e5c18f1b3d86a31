package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_MissingGivesDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, Default(home), cfg)
	assert.Equal(t, filepath.Join(home, "data"), cfg.DataDir())
}

func TestSaveAndRead(t *testing.T) {
	home := t.TempDir()
	cfg := Default(home)
	cfg.Storage.Backend = "sqlite"
	cfg.AI.APIKey = "sk-test"
	require.NoError(t, cfg.Save())

	info, err := os.Stat(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", got.Storage.Backend)
	assert.Equal(t, "sk-test", got.AI.APIKey)
	assert.Equal(t, home, got.Home)
}

func TestReadFile_BadTOML(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("storage = [broken"), 0o644))
	_, err := ReadFile(home)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WELLTRACK_HOME", home)
	t.Setenv("WELLTRACK_STORAGE", "memory")
	t.Setenv("WELLTRACK_LOG_LEVEL", "debug")
	t.Setenv("ANTHROPIC_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := Default(t.TempDir())
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "postgres"
	assert.Error(t, cfg.Validate())
	cfg.Storage.DSN = "postgres://localhost/welltrack"
	assert.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "redis"
	assert.Error(t, cfg.Validate())

	cfg = Default(t.TempDir())
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())
}
