package ai

import (
	"context"
	"fmt"
)

// runTool executes the named tool from the offered set.
// A name the caller never offered is treated as an upstream failure.
func runTool(ctx context.Context, tools []Tool, name string, args map[string]any) (map[string]any, error) {
	for _, t := range tools {
		if t.Name != name {
			continue
		}
		if t.Handler == nil {
			return nil, fmt.Errorf("%w: tool %q has no handler", ErrUpstream, name)
		}
		out, err := t.Handler(ctx, args)
		if err != nil {
			return nil, fmt.Errorf("%w: tool %q: %w", ErrUpstream, name, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: model called unknown tool %q", ErrUpstream, name)
}
