package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustyhq/trusty/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.Claude.Command)
	assert.Equal(t, "sonnet", cfg.Claude.Model)
	assert.Equal(t, "medium", cfg.Tasks.DefaultPriority)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_RepoFile(t *testing.T) {
	trustyDir := t.TempDir()
	writeConfig(t, trustyDir, `
[claude]
model = "opus"
timeout_seconds = 120

[tasks]
default_priority = "high"
`)

	loader := NewLoaderWithGlobalDir(trustyDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "opus", cfg.Claude.Model)
	assert.Equal(t, 120, cfg.Claude.TimeoutSeconds)
	assert.Equal(t, "high", cfg.Tasks.DefaultPriority)
	// Untouched keys keep their defaults
	assert.Equal(t, "claude", cfg.Claude.Command)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_RepoOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[claude]
model = "haiku"

[log]
level = "debug"
`)

	trustyDir := t.TempDir()
	writeConfig(t, trustyDir, `
[claude]
model = "opus"
`)

	loader := NewLoaderWithGlobalDir(trustyDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Repo wins where both are set; global applies otherwise
	assert.Equal(t, "opus", cfg.Claude.Model)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_EnvOverridesFiles(t *testing.T) {
	trustyDir := t.TempDir()
	writeConfig(t, trustyDir, `
[claude]
model = "opus"
`)

	t.Setenv("TRUSTY_CLAUDE_MODEL", "haiku")
	t.Setenv("TRUSTY_DEFAULT_PRIORITY", "low")
	t.Setenv("TRUSTY_LOG_LEVEL", "warn")

	loader := NewLoaderWithGlobalDir(trustyDir, t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "haiku", cfg.Claude.Model)
	assert.Equal(t, "low", cfg.Tasks.DefaultPriority)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_MissingFilesAreFine(t *testing.T) {
	loader := NewLoaderWithGlobalDir(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "nope"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.Claude.Command)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	trustyDir := t.TempDir()
	writeConfig(t, trustyDir, "not [valid toml")

	loader := NewLoaderWithGlobalDir(trustyDir, t.TempDir())
	_, err := loader.Load()
	assert.Error(t, err)
}
