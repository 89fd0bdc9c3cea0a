package ai

import (
	"context"
	"errors"
)

var (
	// ErrUpstream marks failures talking to the model: transport, auth,
	// quota, empty candidates or a tool round that could not be completed.
	ErrUpstream = errors.New("model call failed")

	// ErrParse marks model output that is not valid JSON for the requested shape.
	ErrParse = errors.New("model output is not valid json")

	// ErrShape marks valid JSON whose types differ from the requested shape.
	ErrShape = errors.New("model output does not match the requested shape")
)

// GenerateRequest is a single model invocation.
type GenerateRequest struct {
	Prompt string

	// Image is attached after the prompt when present.
	Image *Image

	// Tools are offered to the model. The model may or may not call them.
	Tools []Tool

	// JSON asks the backend to constrain output to JSON when it supports
	// doing so for this request.
	JSON bool
}

// Image is an already validated image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

// ToolHandler executes a tool call locally with the arguments chosen by the model.
type ToolHandler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Tool is a named local capability the model may ask the caller to run.
type Tool struct {
	Name        string
	Description string
	Params      []ToolParam
	Handler     ToolHandler
}

// ToolParam describes one argument of a tool.
// Type is a JSON schema primitive: "string", "number", "integer" or "boolean".
type ToolParam struct {
	Name        string
	Type        string
	Description string
	Enum        []string
	Required    bool
}

func (t Tool) required() []string {
	var out []string
	for _, p := range t.Params {
		if p.Required {
			out = append(out, p.Name)
		}
	}
	return out
}
