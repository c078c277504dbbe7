package postgres

import "context"

// RowScanner abstracts sql.Rows so the probe can be tested without a driver.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is the minimal database surface the probe needs.
type DB interface {
	PingContext(ctx context.Context) error
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}
