package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.GroupLimit)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.ArchivePath)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("GROUP_LIMIT", "250")
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("ARCHIVE_PATH", "/var/lib/gometar/reports.db")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 250, cfg.GroupLimit)
	assert.Equal(t, int64(1024), cfg.MaxBodyBytes)
	assert.Equal(t, "/var/lib/gometar/reports.db", cfg.ArchivePath)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.env")
	require.NoError(t, os.WriteFile(path, []byte("GROUP_LIMIT=42\nLOG_FORMAT=text\n"), 0o644))
	t.Setenv("LOG_FORMAT", "json")
	// godotenv sets variables for the whole process; register them for cleanup.
	t.Setenv("GROUP_LIMIT", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.GroupLimit)
	assert.Equal(t, "json", cfg.LogFormat, "environment wins over the file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration", "SHUTDOWN_TIMEOUT"},
		{"SHUTDOWN_TIMEOUT", "-1s", "SHUTDOWN_TIMEOUT"},
		{"GROUP_LIMIT", "many", "GROUP_LIMIT"},
		{"GROUP_LIMIT", "0", "GROUP_LIMIT"},
		{"MAX_BODY_BYTES", "-5", "MAX_BODY_BYTES"},
		{"LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"LOG_LEVEL", "verbose", "LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(noEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
