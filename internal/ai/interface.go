package ai

import (
	"context"
)

// Generator defines the contract for interacting with a generative model.
// Implementations exist for Gemini and OpenAI; tests swap in fakes.
type Generator interface {
	// Generate sends one prompt (optionally with an image and callable tools)
	// and returns the model's final free-form text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Options are shared by every Generator implementation.
type Options struct {
	Model       string
	Temperature float32

	// JSONMode lets a backend force JSON output when a request asks for it.
	JSONMode bool

	// MaxToolRounds caps how many times the model may ask for tool results
	// before an answer is required.
	MaxToolRounds int

	// BaseURL overrides the API endpoint. Only the OpenAI backend honours it.
	BaseURL string
}

func (o Options) toolRounds() int {
	if o.MaxToolRounds < 1 {
		return 1
	}
	return o.MaxToolRounds
}
