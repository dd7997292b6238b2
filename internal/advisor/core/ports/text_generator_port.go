package ports

import "context"

type TextGeneratorPort interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
