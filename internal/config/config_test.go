package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "api-spec.yaml", cfg.Spec.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.LogToFile)
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 0.0.0.0
  port: 9090
spec:
  path: petstore.yaml
logging:
  level: debug
  log_to_file: true
  log_file_path: /tmp/stub.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "petstore.yaml", cfg.Spec.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.LogToFile)
	assert.Equal(t, "/tmp/stub.log", cfg.Logging.LogFilePath)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 3000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "api-spec.yaml", cfg.Spec.Path)
	assert.Equal(t, 10, cfg.Logging.MaxSize)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "server: [not a mapping",
		},
		{
			name: "port out of range",
			content: `
server:
  port: 70000
`,
		},
		{
			name: "unknown log level",
			content: `
logging:
  level: verbose
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("valid file is loaded", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: 9999
`)
		cfg := LoadOrDefault(path)
		assert.Equal(t, 9999, cfg.Server.Port)
	})
}
