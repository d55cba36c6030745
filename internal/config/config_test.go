package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, def.Storage.Path, cfg.Storage.Path)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
	assert.Equal(t, 28, cfg.Logging.MaxAgeDays)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `storage:
  backend: sqlite
  path: ` + filepath.Join(dir, "data") + `
ui:
  alt_screen: false
logging:
  level: debug
  max_backups: 9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.Storage.Path)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 9, cfg.Logging.MaxBackups)
	// Keys absent from the file keep their defaults
	assert.Equal(t, 28, cfg.Logging.MaxAgeDays)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("CINEFLIX_STORAGE_BACKEND", "memory")
	t.Setenv("CINEFLIX_LOGGING_LEVEL", "ERROR")

	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "ERROR", cfg.Logging.Level)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("CINEFLIX_STORAGE_BACKEND", "redis")

	_, err := LoadConfigFrom(t.TempDir())
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage: [unclosed"), 0644))

	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Storage.Backend = BackendMemory
	assert.NoError(t, cfg.Validate())
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendFile
	cfg.Storage.Path = filepath.Join(dir, "store")
	cfg.Logging.Compress = true

	path, err := SaveConfig(cfg, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	loaded, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "theme")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "movies"), expandHome("~/movies"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
}
