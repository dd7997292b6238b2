// Package gemini adapts the Google Generative Language API to
// llm.TextGenerator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	glang "google.golang.org/api/generativelanguage/v1beta"
	goption "google.golang.org/api/option"

	"smebig-warroom/internal/platform/llm"
)

const DefaultModel = "gemini-2.0-flash"

var ErrEmptyAnswer = errors.New("gemini: empty answer")

type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration // per request, 0 means 30s
}

type Client struct {
	svc     *glang.Service
	model   string
	timeout time.Duration
}

var _ llm.TextGenerator = (*Client)(nil)

// New builds a client. Extra options are appended after the API key, which
// lets tests point the client at a local endpoint.
func New(ctx context.Context, o Options, extra ...goption.ClientOption) (*Client, error) {
	model := strings.TrimSpace(o.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var opts []goption.ClientOption
	if o.APIKey != "" {
		opts = append(opts, goption.WithAPIKey(o.APIKey))
	}
	opts = append(opts, extra...)

	svc, err := glang.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: create service: %w", err)
	}
	return &Client{svc: svc, model: model, timeout: timeout}, nil
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &glang.GenerateContentRequest{
		Contents: []*glang.Content{{
			Role:  "user",
			Parts: []*glang.Part{{Text: prompt}},
		}},
	}

	started := time.Now()
	resp, err := c.svc.Models.GenerateContent("models/"+c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := answerText(resp)
	log.WithFields(log.Fields{
		"component":   "gemini",
		"model":       c.model,
		"duration_ms": time.Since(started).Milliseconds(),
		"answer_len":  len(text),
	}).Debug("generate content")

	if text == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}

// answerText joins the text parts of the first candidate.
func answerText(resp *glang.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
