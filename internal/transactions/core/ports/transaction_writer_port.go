package ports

import (
	"context"

	"smebig-warroom/internal/transactions/core/domain"
)

type TransactionWriterPort interface {
	// InsertBatch writes all rows in one statement. Rows whose dedupe key is
	// already stored are skipped; created counts only the new ones.
	InsertBatch(ctx context.Context, txs []domain.Transaction) (created int, err error)
}
