package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Generator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	opts   Options
	logger *slog.Logger
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from the environment.
func NewGeminiProvider(ctx context.Context, apiKey string, opts Options, logger *slog.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		opts:   opts,
		logger: logger.With("component", "ai.gemini", "model", opts.Model),
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// Generate runs one conversation with the model. When the model answers with
// function calls, the matching tools run locally and their results are sent
// back until the model produces text.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	// A model handle per call keeps requests from sharing mutable settings.
	model := p.client.GenerativeModel(p.opts.Model)
	model.SetTemperature(p.opts.Temperature)
	if len(req.Tools) > 0 {
		model.Tools = []*genai.Tool{geminiTool(req.Tools)}
	} else if req.JSON && p.opts.JSONMode {
		// Gemini rejects JSON mode combined with function calling.
		model.ResponseMIMEType = "application/json"
	}

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.Blob{MIMEType: req.Image.MIMEType, Data: req.Image.Data})
	}

	session := model.StartChat()
	resp, err := session.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("%w: gemini generation error: %w", ErrUpstream, err)
	}

	for round := 1; ; round++ {
		text, calls, err := geminiContent(resp)
		if err != nil {
			return "", err
		}
		if len(calls) == 0 {
			return text, nil
		}
		if round > p.opts.toolRounds() {
			return "", fmt.Errorf("%w: gemini still calling tools after %d rounds", ErrUpstream, p.opts.toolRounds())
		}

		results := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			p.logger.Info("gemini tool call", "tool", call.Name, "round", round)
			out, err := runTool(ctx, req.Tools, call.Name, call.Args)
			if err != nil {
				return "", err
			}
			results = append(results, genai.FunctionResponse{Name: call.Name, Response: out})
		}

		resp, err = session.SendMessage(ctx, results...)
		if err != nil {
			return "", fmt.Errorf("%w: gemini tool response error: %w", ErrUpstream, err)
		}
	}
}

// geminiContent splits the first candidate into its text and function calls.
func geminiContent(resp *genai.GenerateContentResponse) (string, []genai.FunctionCall, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil, fmt.Errorf("%w: no response candidates from Gemini", ErrUpstream)
	}

	var text strings.Builder
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			text.WriteString(string(v))
		case genai.FunctionCall:
			calls = append(calls, v)
		case *genai.FunctionCall:
			calls = append(calls, *v)
		}
	}
	if len(calls) == 0 && strings.TrimSpace(text.String()) == "" {
		return "", nil, fmt.Errorf("%w: Gemini returned empty text", ErrUpstream)
	}
	return text.String(), calls, nil
}

func geminiTool(tools []Tool) *genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]*genai.Schema, len(t.Params))
		for _, p := range t.Params {
			props[p.Name] = &genai.Schema{
				Type:        geminiType(p.Type),
				Description: p.Description,
				Enum:        p.Enum,
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: props,
				Required:   t.required(),
			},
		})
	}
	return &genai.Tool{FunctionDeclarations: decls}
}

func geminiType(t string) genai.Type {
	switch t {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
