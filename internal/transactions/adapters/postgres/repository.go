package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/ports"
)

// postgres caps bind parameters per statement at 65535
const maxParams = 65535

const insertColumns = 9

var ErrBatchTooLarge = errors.New("batch exceeds the statement parameter limit")

type TransactionRepository struct {
	db DB
}

func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ ports.TransactionWriterPort = (*TransactionRepository)(nil)

const insertTransactionsPrefix = `
INSERT INTO transactions (
    client_name,
    customer_id,
    order_date,
    amount,
    product_name,
    channel,
    import_batch_id,
    raw_data,
    dedupe_key
) VALUES `

const insertTransactionsSuffix = `
ON CONFLICT (dedupe_key) DO NOTHING`

func (r *TransactionRepository) InsertBatch(ctx context.Context, txs []domain.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}
	if len(txs)*insertColumns > maxParams {
		return 0, fmt.Errorf("%w: %d rows", ErrBatchTooLarge, len(txs))
	}

	var sb strings.Builder
	sb.WriteString(insertTransactionsPrefix)
	args := make([]any, 0, len(txs)*insertColumns)

	for i, tx := range txs {
		rawJSON, err := json.Marshal(rawOrEmpty(tx.RawData))
		if err != nil {
			return 0, fmt.Errorf("encode raw row: %w", err)
		}

		if i > 0 {
			sb.WriteString(",\n")
		}
		base := i * insertColumns
		sb.WriteString("(")
		for c := 1; c <= insertColumns; c++ {
			if c > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", base+c)
		}
		sb.WriteString(")")

		args = append(args,
			tx.ClientName,
			tx.CustomerID,
			tx.OrderDate,
			tx.Amount,
			tx.ProductName,
			tx.Channel,
			tx.ImportBatchID,
			rawJSON,
			tx.DedupeKey,
		)
	}
	sb.WriteString(insertTransactionsSuffix)

	res, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("insert transactions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert transactions: %w", err)
	}

	// rows counts only new records; conflicts are skipped silently
	return int(rows), nil
}

func rawOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
