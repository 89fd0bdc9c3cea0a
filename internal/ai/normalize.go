package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// CleanJSON removes markdown code fences the model sometimes wraps around its
// answer (e.g. ```json ... ```). Already clean input is returned unchanged
// apart from surrounding whitespace.
func CleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimSpace(strings.TrimPrefix(input, jsonFence))
	input = strings.TrimSpace(strings.TrimPrefix(input, fence))
	input = strings.TrimSpace(strings.TrimSuffix(input, fence))
	return input
}

// ParseJSON cleans raw model output and checks that what remains is JSON.
// Only syntax failures wrap ErrParse; the value itself is returned as is.
func ParseJSON(raw string) (json.RawMessage, error) {
	clean := CleanJSON(raw)
	var msg json.RawMessage
	if err := json.Unmarshal([]byte(clean), &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return msg, nil
}

// DecodeJSON parses raw model output and unmarshals it into v. Invalid JSON
// wraps ErrParse; valid JSON that does not fit v wraps ErrShape.
func DecodeJSON(raw string, v any) error {
	msg, err := ParseJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(msg, v); err != nil {
		return fmt.Errorf("%w: %v", ErrShape, err)
	}
	return nil
}
