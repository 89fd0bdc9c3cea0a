package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"travelagent/internal/ai"
)

// Service answers weather questions through the model and the local weather tool.
type Service struct {
	gen    ai.Generator
	logger *slog.Logger
}

// NewService creates a Service that talks to gen.
func NewService(gen ai.Generator, logger *slog.Logger) *Service {
	return &Service{gen: gen, logger: logger.With("component", "weather.service")}
}

// GetWeather asks the model for a Report on destination. Errors wrap
// ai.ErrUpstream when the call fails and ai.ErrParse when the answer is not
// JSON. Valid JSON of another shape is returned with a nil Report.
func (s *Service) GetWeather(ctx context.Context, destination string) (*Result, error) {
	destination = strings.TrimSpace(destination)

	// Track whether the model actually used the tool or made the data up.
	var toolCalls atomic.Int32
	tool := NewTool()
	handler := tool.Handler
	tool.Handler = func(ctx context.Context, args map[string]any) (map[string]any, error) {
		toolCalls.Add(1)
		return handler(ctx, args)
	}

	prompt := buildPrompt(destination)
	s.logger.Info("weather request", "destination", destination, "prompt_len", len(prompt))

	raw, err := s.gen.Generate(ctx, ai.GenerateRequest{
		Prompt: prompt,
		Tools:  []ai.Tool{tool},
		JSON:   true,
	})
	if err != nil {
		s.logger.Error("weather generation failed", "destination", destination, "error", err)
		return nil, err
	}
	s.logger.Info("weather response", "destination", destination, "response_len", len(raw), "tool_calls", toolCalls.Load())
	s.logger.Debug("weather raw response", "raw", raw)

	msg, err := ai.ParseJSON(raw)
	if err != nil {
		s.logger.Error("weather response parse failed", "destination", destination, "error", err)
		return nil, fmt.Errorf("decode weather report: %w", err)
	}

	out := &Result{Raw: msg}
	var report Report
	if err := json.Unmarshal(msg, &report); err != nil {
		s.logger.Warn("weather answer does not match report shape", "destination", destination, "error", err)
		return out, nil
	}
	if u := report.WeatherData.Unit; u != Celsius && u != Fahrenheit {
		s.logger.Warn("weather report has unexpected unit", "unit", u)
	}
	out.Report = &report
	return out, nil
}
