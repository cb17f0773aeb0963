package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("NEXT_PUBLIC_OPENROUTER_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 95, cfg.Poster.JPEGQuality)
	assert.Equal(t, 5, cfg.Poster.MaxImages)
	assert.Equal(t, 24*time.Hour, cfg.Storage.StoryTTL)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Empty(t, cfg.OpenRouter.APIKey)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
server:
  port: 9090
log:
  level: debug
storage:
  type: disk
  story_ttl: 2h
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o644))
	t.Setenv("JASHN_POSTER_JPEG_QUALITY", "80")
	t.Setenv("NEXT_PUBLIC_OPENROUTER_API_KEY", "sk-test")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "disk", cfg.Storage.Type)
	assert.Equal(t, 2*time.Hour, cfg.Storage.StoryTTL)
	assert.Equal(t, 80, cfg.Poster.JPEGQuality)
	assert.Equal(t, "sk-test", cfg.OpenRouter.APIKey)
}

func TestShippedConfigModelOverride(t *testing.T) {
	t.Setenv("OPENROUTER_MODEL", "")
	t.Setenv("NEXT_PUBLIC_OPENROUTER_MODEL", "")
	cfg, err := Load("../../configs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "arcee-ai/trinity-large-preview:free", cfg.OpenRouter.Model)

	t.Setenv("NEXT_PUBLIC_OPENROUTER_MODEL", "meta/llama-public")
	cfg, err = Load("../../configs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "meta/llama-public", cfg.OpenRouter.Model)

	t.Setenv("OPENROUTER_MODEL", "meta/llama-x")
	cfg, err = Load("../../configs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "meta/llama-x", cfg.OpenRouter.Model)
}
