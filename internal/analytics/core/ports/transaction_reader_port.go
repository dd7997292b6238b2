package ports

import (
	"context"

	"smebig-warroom/internal/analytics/core/domain"
)

type TransactionReaderPort interface {
	// ListByClient returns every stored transaction of one client ordered by
	// order date. An unknown client yields an empty slice, not an error.
	ListByClient(ctx context.Context, clientName string) ([]domain.Transaction, error)
}
