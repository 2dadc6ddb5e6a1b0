package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"accura_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Address())
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "uploads", cfg.Storage.BasePath)
	assert.False(t, cfg.Upload.SanitizeFilenames)
	assert.Zero(t, cfg.Upload.ThumbnailSize)
	assert.Equal(t, int64(config.DefaultMaxPixels), cfg.Upload.MaxPixels)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: 8080
  env: production
upload:
  sanitize_filenames: true
  thumbnail_size: 200
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep their defaults")
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "uploads", cfg.Storage.BasePath)
	assert.True(t, cfg.Upload.SanitizeFilenames)
	assert.Equal(t, 200, cfg.Upload.ThumbnailSize)
	assert.Equal(t, 85, cfg.Upload.ImageQuality)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestGetConfigLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	config.AppConfig = nil
	t.Cleanup(func() { config.AppConfig = nil })

	cfg := config.GetConfig()
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Same(t, cfg, config.GetConfig())
}
