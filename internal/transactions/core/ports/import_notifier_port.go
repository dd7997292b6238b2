package ports

import (
	"context"

	"smebig-warroom/internal/transactions/core/domain"
)

type ImportNotifierPort interface {
	NotifyImported(ctx context.Context, evt domain.ImportedEvent) error
}
