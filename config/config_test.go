package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults tests the built-in configuration when no file exists
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "public/data.json", cfg.DataFile)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.NotEmpty(t, cfg.CORSOrigins)
}

// TestLoadFile tests YAML file values
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokusound.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listenAddr: ":9000"
dataFile: catalog/data.json
publicDir: assets
corsOrigins:
  - https://example.com
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "catalog/data.json", cfg.DataFile)
	assert.Equal(t, "assets", cfg.PublicDir)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
}

// TestLoadEnvOverrides tests that environment variables win over the file
func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokusound.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddr: \":9000\"\n"), 0644))

	t.Setenv("PORT", "4000")
	t.Setenv("TOKUSOUND_DATA_FILE", "/srv/data.json")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, "/srv/data.json", cfg.DataFile)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

// TestLoadMalformedFile tests that a broken config file is an error
func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokusound.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddr: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
