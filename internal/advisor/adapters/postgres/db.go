package postgres

import (
	"context"
	"database/sql"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
