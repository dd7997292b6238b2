// Package llm holds helpers shared by everything that talks to a text
// generation model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable is returned when no model is configured.
var ErrUnavailable = errors.New("llm: no model configured")

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// StripFences removes Markdown code fences such as ```json ... ``` that
// models wrap around structured answers.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// drop the language tag line
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeJSON strips fences and decodes the first JSON value of text into v.
// Models sometimes add prose around the value, so decoding starts at the
// first '{' or '['.
func DecodeJSON(text string, v any) error {
	s := StripFences(text)
	if i := strings.IndexAny(s, "{["); i > 0 {
		s = s[i:]
	}
	dec := json.NewDecoder(strings.NewReader(s))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("llm: decode json answer: %w", err)
	}
	return nil
}
