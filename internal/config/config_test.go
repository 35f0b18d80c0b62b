package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"database_url": "postgres://localhost/scorer",
		"config_key": "ontario-resume-v1",
		"org_id": "tps",
		"port": 8080,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/scorer", cfg.DatabaseURL)
	assert.Equal(t, "ontario-resume-v1", cfg.ConfigKey)
	assert.Equal(t, "tps", cfg.OrgID)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "{ not json }")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingProfileFile(t *testing.T) {
	cfg := &Config{Profile: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ConfigKey: "custom-key"}
	defaults := Config{
		ConfigKey:   "default-key",
		DatabaseURL: "postgres://localhost/scorer",
		Port:        8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "custom-key", merged.ConfigKey, "explicit values win")
	assert.Equal(t, "postgres://localhost/scorer", merged.DatabaseURL, "empty values take defaults")
	assert.Equal(t, 8080, merged.Port)
}
