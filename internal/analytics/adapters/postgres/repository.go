package postgres

import (
	"context"
	"fmt"
	"time"

	"smebig-warroom/internal/analytics/core/domain"
	"smebig-warroom/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type TransactionReader struct {
	db DB
}

func NewTransactionReader(db DB) *TransactionReader {
	return &TransactionReader{db: db}
}

var _ ports.TransactionReaderPort = (*TransactionReader)(nil)

// amount is NUMERIC in the table; the engine works in float64.
const listByClientSQL = `
SELECT
    client_name,
    customer_id,
    order_date,
    amount::float8,
    product_name,
    channel
FROM transactions
WHERE client_name = $1
ORDER BY order_date, id`

func (r *TransactionReader) ListByClient(ctx context.Context, clientName string) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, listByClientSQL, clientName)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			tx        domain.Transaction
			orderDate time.Time
		)
		if err := rows.Scan(
			&tx.ClientName,
			&tx.CustomerID,
			&orderDate,
			&tx.Amount,
			&tx.ProductName,
			&tx.Channel,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.OrderDate = orderDate.UTC()
		out = append(out, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return out, nil
}
