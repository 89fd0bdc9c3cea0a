package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRAVEL_CONFIG_PATH", "TRAVEL_HTTP_ADDR", "TRAVEL_HTTP_READ_TIMEOUT", "TRAVEL_HTTP_WRITE_TIMEOUT",
		"TRAVEL_CORS_ORIGINS", "TRAVEL_MAX_UPLOAD_MB", "TRAVEL_AI_PROVIDER", "TRAVEL_AI_MODEL",
		"TRAVEL_AI_TEMPERATURE", "TRAVEL_AI_TIMEOUT", "TRAVEL_AI_JSON_MODE", "TRAVEL_AI_MAX_TOOL_ROUNDS",
		"GOOGLE_GEMINI_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"TRAVEL_LOG_LEVEL", "TRAVEL_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_GEMINI_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, ProviderGemini, cfg.AI.Provider)
	require.Equal(t, defaultGeminiModel, cfg.AI.Model)
	require.Equal(t, 60*time.Second, cfg.AI.Timeout)
	require.Equal(t, "key-123", cfg.AI.APIKey())
	require.Equal(t, 5, cfg.AI.MaxToolRounds)
}

func TestLoadFailsWithoutCredential(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "GOOGLE_GEMINI_API_KEY")
}

func TestLoadAcceptsLegacyGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "legacy", cfg.AI.GeminiKey)
}

func TestLoadOpenAIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRAVEL_AI_PROVIDER", "OpenAI")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	require.Equal(t, defaultOpenAIModel, cfg.AI.Model)
	require.Equal(t, "sk-test", cfg.AI.APIKey())
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRAVEL_AI_PROVIDER", "claude")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "key")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported ai provider")
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
http:
  addr: ":9090"
  allowedOrigins: ["https://app.example.com"]
ai:
  model: gemini-2.0-flash
  timeout: 5s
  geminiKey: from-file
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("TRAVEL_CONFIG_PATH", path)
	t.Setenv("TRAVEL_HTTP_ADDR", ":7070")
	t.Setenv("TRAVEL_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	require.Equal(t, 5*time.Second, cfg.AI.Timeout)
	require.Equal(t, "from-file", cfg.AI.GeminiKey)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRAVEL_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("GOOGLE_GEMINI_API_KEY", "key")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateBounds(t *testing.T) {
	cfg := defaults()
	cfg.AI.GeminiKey = "key"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.AI.MaxToolRounds = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.AI.Timeout = -time.Second
	require.Error(t, bad.Validate())

	bad = cfg
	bad.HTTP.MaxUploadMB = 0
	require.Error(t, bad.Validate())
}
