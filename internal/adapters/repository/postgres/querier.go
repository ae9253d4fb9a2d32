package postgres

import (
	"context"
	"database/sql"
)

// SQLQuerier is the query surface shared by *sql.DB and *sql.Tx, so the same
// repository code runs inside and outside a transaction.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
