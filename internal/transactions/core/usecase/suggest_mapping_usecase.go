package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/platform/llm"
	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/ports"
)

var ErrNoHeaders = errors.New("headers are required")

const (
	MappingSourceLLM       = "llm"
	MappingSourceHeuristic = "heuristic"
)

type SuggestMappingInput struct {
	Headers []string
	Preview map[string]string // first data row, header -> cell
}

type MappingSuggestion struct {
	Mapping domain.Mapping
	Missing []string
	Source  string
}

type SuggestMappingUseCase struct {
	gen ports.TextGeneratorPort
}

// NewSuggestMappingUseCase works without a generator; it then only uses
// header aliases.
func NewSuggestMappingUseCase(gen ports.TextGeneratorPort) *SuggestMappingUseCase {
	return &SuggestMappingUseCase{gen: gen}
}

func (uc *SuggestMappingUseCase) Execute(ctx context.Context, in SuggestMappingInput) (*MappingSuggestion, error) {
	headers := make([]string, 0, len(in.Headers))
	for _, h := range in.Headers {
		if strings.TrimSpace(h) != "" {
			headers = append(headers, h)
		}
	}
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	detected := domain.DetectColumns(headers)
	out := &MappingSuggestion{Mapping: detected, Source: MappingSourceHeuristic}

	if uc.gen != nil {
		suggested, err := uc.ask(ctx, headers, in.Preview)
		if err != nil {
			log.WithError(err).WithField("component", "map_columns").Warn("llm mapping failed, using header aliases")
		} else if len(suggested) > 0 {
			out.Mapping = detected.Merge(suggested).Restrict(headers)
			out.Source = MappingSourceLLM
		}
	}

	out.Missing = out.Mapping.Missing()
	return out, nil
}

func (uc *SuggestMappingUseCase) ask(ctx context.Context, headers []string, preview map[string]string) (domain.Mapping, error) {
	prompt, err := mappingPrompt(headers, preview)
	if err != nil {
		return nil, err
	}
	answer, err := uc.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var raw map[string]*string
	if err := llm.DecodeJSON(answer, &raw); err != nil {
		return nil, err
	}

	m := make(domain.Mapping, len(raw))
	for _, f := range domain.Fields {
		if v := raw[f]; v != nil && strings.TrimSpace(*v) != "" {
			m[f] = *v
		}
	}
	// only headers that exist count as an answer
	return m.Restrict(headers), nil
}

func mappingPrompt(headers []string, preview map[string]string) (string, error) {
	h, err := json.Marshal(headers)
	if err != nil {
		return "", fmt.Errorf("encode headers: %w", err)
	}
	if preview == nil {
		preview = map[string]string{}
	}
	p, err := json.Marshal(preview)
	if err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}

	var b strings.Builder
	b.WriteString("You map spreadsheet columns onto a fixed schema.\n")
	b.WriteString("CSV headers: " + string(h) + "\n")
	b.WriteString("First data row: " + string(p) + "\n")
	b.WriteString("Target fields:\n")
	b.WriteString("- order_date: transaction date\n")
	b.WriteString("- customer_id: customer identifier (ID or email)\n")
	b.WriteString("- amount: money amount (number)\n")
	b.WriteString("- product_name: product name\n")
	b.WriteString("- channel: sales channel\n")
	b.WriteString("Reply with one JSON object only. Keys are the target fields, values are CSV header names or null when no column fits. No Markdown.")
	return b.String(), nil
}
