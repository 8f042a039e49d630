package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AGENTGEN_CONFIG", "PORT", "GO_ENV", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL",
		"GEMINI_BASE_URL", "GENERATION_TIMEOUT", "NATS_URL", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 60*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.NATSURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GENERATION_TIMEOUT", "15s")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, 15*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.GeminiAPIKey)

	t.Setenv("GEMINI_API_KEY", "preferred")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "preferred", cfg.GeminiAPIKey)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "agentgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\ngemini_model: file-model\n"), 0o600))
	t.Setenv("AGENTGEN_CONFIG", path)
	t.Setenv("GEMINI_MODEL", "env-model")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "env-model", cfg.GeminiModel, "environment overrides the file")
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATION_TIMEOUT", "0s")

	_, err := Load()
	require.Error(t, err)
}
