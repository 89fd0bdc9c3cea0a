// README: Model client construction; picks the Generator backend from the AI config.
package infra

import (
	"context"
	"fmt"
	"log/slog"

	"travelagent/internal/ai"
	"travelagent/internal/config"
)

// NewGenerator builds the configured backend. The returned close func
// releases client resources and is never nil.
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (ai.Generator, func() error, error) {
	opts := ai.Options{
		Model:         cfg.Model,
		Temperature:   cfg.Temperature,
		JSONMode:      cfg.JSONMode,
		MaxToolRounds: cfg.MaxToolRounds,
		BaseURL:       cfg.OpenAIBaseURL,
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey, opts, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("gemini init: %w", err)
		}
		return p, p.Close, nil
	case config.ProviderOpenAI:
		p := ai.NewOpenAIProvider(cfg.OpenAIKey, opts, logger)
		return p, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}
