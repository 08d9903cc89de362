package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "data/clientbook.json", cfg.DataFile)
	assert.Equal(t, "json", cfg.StorageDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"storage_driver": "sqlite",
		"data_file": "book.db",
		"log_format": "json"
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "book.db", cfg.DataFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level": "warn"}`), 0o600))
	t.Setenv("CLIENTBOOK_LOG_LEVEL", "debug")
	t.Setenv("CLIENTBOOK_HTTP_ADDR", "127.0.0.1:9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"storage_driver": "csv"}`), 0o600))

	tests := map[string]struct {
		path    string
		wantErr string
	}{
		"missing file":     {path: filepath.Join(dir, "nope.json"), wantErr: "config file"},
		"malformed file":   {path: bad, wantErr: "failed to load config file"},
		"validation error": {path: invalid, wantErr: "config validation failed"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(tc.path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())

	cfg.LogFormat = "json"
	cfg.HTTPAddr = "nonsense"
	assert.Error(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			cfg := Configuration{LogLevel: level}
			assert.Equal(t, want, cfg.SlogLevel())
		})
	}
}
