package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"travelagent/internal/ai"
)

// Service turns a location or a photo into destination suggestions.
type Service struct {
	gen    ai.Generator
	logger *slog.Logger
}

// NewService creates a Service that talks to gen.
func NewService(gen ai.Generator, logger *slog.Logger) *Service {
	return &Service{gen: gen, logger: logger.With("component", "suggestion.service")}
}

// SuggestByLocation asks for destinations near or related to location.
func (s *Service) SuggestByLocation(ctx context.Context, location string, prefs []string) (*Suggestions, error) {
	location = strings.TrimSpace(location)
	prefs = CleanPreferences(prefs)
	prompt := buildLocationPrompt(location, prefs)

	s.logger.Info("location suggestion request", "location", location, "preferences", len(prefs), "prompt_len", len(prompt))
	return s.generate(ctx, "location", ai.GenerateRequest{Prompt: prompt, JSON: true})
}

// SuggestByImage asks for destinations resembling the uploaded image.
// The image is decoded before the model is called.
func (s *Service) SuggestByImage(ctx context.Context, data []byte, prefs []string) (*Suggestions, error) {
	img, err := DecodeImage(data)
	if err != nil {
		s.logger.Warn("image decode failed", "bytes", len(data), "error", err)
		return nil, err
	}
	prefs = CleanPreferences(prefs)
	prompt := buildImagePrompt(prefs)

	s.logger.Info("image suggestion request", "mime", img.MIMEType, "bytes", len(img.Data), "preferences", len(prefs), "prompt_len", len(prompt))
	return s.generate(ctx, "image", ai.GenerateRequest{Prompt: prompt, Image: img, JSON: true})
}

func (s *Service) generate(ctx context.Context, source string, req ai.GenerateRequest) (*Suggestions, error) {
	raw, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.logger.Error("suggestion generation failed", "source", source, "error", err)
		return nil, err
	}
	s.logger.Info("suggestion response", "source", source, "response_len", len(raw))
	s.logger.Debug("suggestion raw response", "source", source, "raw", raw)

	msg, err := ai.ParseJSON(raw)
	if err != nil {
		s.logger.Error("suggestion parse failed", "source", source, "error", err)
		return nil, fmt.Errorf("decode destinations: %w", err)
	}

	out := &Suggestions{Raw: msg}
	if err := json.Unmarshal(msg, &out.Destinations); err != nil {
		s.logger.Warn("suggestion answer does not match destination shape", "source", source, "error", err)
		out.Destinations = nil
		return out, nil
	}
	s.checkShape(source, out.Destinations)
	return out, nil
}

// checkShape logs how the answer deviates from what the prompt asked for.
// Deviations are reported, never rejected.
func (s *Service) checkShape(source string, destinations []Destination) {
	if len(destinations) != DestinationCount {
		s.logger.Warn("unexpected destination count", "source", source, "want", DestinationCount, "got", len(destinations))
	}
	for i, d := range destinations {
		if strings.TrimSpace(d.Name) == "" {
			s.logger.Warn("destination without name", "source", source, "index", i)
		}
		if len(d.Attractions) != 3 {
			s.logger.Warn("unexpected attraction count", "source", source, "index", i, "got", len(d.Attractions))
		}
		if !d.BudgetLevel.valid() {
			s.logger.Warn("unexpected budget level", "source", source, "index", i, "budget_level", d.BudgetLevel)
		}
	}
}
