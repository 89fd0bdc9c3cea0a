package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// chatCompleter is the slice of the OpenAI client used here.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements Generator on the OpenAI chat completions API.
type OpenAIProvider struct {
	client chatCompleter
	opts   Options
	logger *slog.Logger
}

// NewOpenAIProvider creates a provider for apiKey. opts.BaseURL points it at
// any OpenAI compatible endpoint.
func NewOpenAIProvider(apiKey string, opts Options, logger *slog.Logger) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	return newOpenAIProvider(openai.NewClientWithConfig(cfg), opts, logger)
}

func newOpenAIProvider(client chatCompleter, opts Options, logger *slog.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		client: client,
		opts:   opts,
		logger: logger.With("component", "ai.openai", "model", opts.Model),
	}
}

// Generate sends the prompt as a user message and resolves tool calls locally
// until the model replies with text. JSON mode is never forced: the
// json_object response format cannot return a top-level array.
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := []openai.ChatCompletionMessage{userMessage(req)}
	tools := openAITools(req.Tools)

	for round := 1; ; round++ {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       p.opts.Model,
			Messages:    messages,
			Temperature: p.opts.Temperature,
			Tools:       tools,
		})
		if err != nil {
			return "", fmt.Errorf("%w: openai chat completion: %w", ErrUpstream, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: openai returned no choices", ErrUpstream)
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			if strings.TrimSpace(msg.Content) == "" {
				return "", fmt.Errorf("%w: openai returned empty content", ErrUpstream)
			}
			return msg.Content, nil
		}
		if round > p.opts.toolRounds() {
			return "", fmt.Errorf("%w: openai still calling tools after %d rounds", ErrUpstream, p.opts.toolRounds())
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			p.logger.Info("openai tool call", "tool", call.Function.Name, "round", round)
			args := map[string]any{}
			if strings.TrimSpace(call.Function.Arguments) != "" {
				if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
					return "", fmt.Errorf("%w: tool %q arguments: %w", ErrUpstream, call.Function.Name, err)
				}
			}
			out, err := runTool(ctx, req.Tools, call.Function.Name, args)
			if err != nil {
				return "", err
			}
			payload, err := json.Marshal(out)
			if err != nil {
				return "", fmt.Errorf("%w: encode tool %q result: %w", ErrUpstream, call.Function.Name, err)
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}
}

func userMessage(req GenerateRequest) openai.ChatCompletionMessage {
	if req.Image == nil {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt}
	}
	dataURL := "data:" + req.Image.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(req.Image.Data)
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto},
			},
		},
	}
}

func openAITools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]jsonschema.Definition, len(t.Params))
		for _, p := range t.Params {
			props[p.Name] = jsonschema.Definition{
				Type:        jsonschema.DataType(p.Type),
				Description: p.Description,
				Enum:        p.Enum,
			}
		}
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: props,
					Required:   t.required(),
				},
			},
		})
	}
	return out
}
