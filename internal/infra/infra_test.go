package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"travelagent/internal/ai"
	"travelagent/internal/config"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "shown", line["msg"])
	require.Equal(t, "test", line["component"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "TEXT"})
	logger.Debug("details", "k", "v")
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
	require.Equal(t, slog.LevelWarn, parseLevel("Warning"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
}

func TestNewGeneratorOpenAI(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen, closeFn, err := NewGenerator(context.Background(), config.AIConfig{
		Provider:      config.ProviderOpenAI,
		Model:         "gpt-4o-mini",
		OpenAIKey:     "sk-test",
		MaxToolRounds: 3,
	}, logger)
	require.NoError(t, err)
	require.IsType(t, &ai.OpenAIProvider{}, gen)
	require.NoError(t, closeFn())
}

func TestNewGeneratorGemini(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen, closeFn, err := NewGenerator(context.Background(), config.AIConfig{
		Provider:  config.ProviderGemini,
		Model:     "gemini-2.5-flash",
		GeminiKey: "not-a-real-key",
	}, logger)
	require.NoError(t, err)
	require.IsType(t, &ai.GeminiProvider{}, gen)
	require.NoError(t, closeFn())
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, _, err := NewGenerator(context.Background(), config.AIConfig{Provider: "claude"}, slog.Default())
	require.Error(t, err)
}
