package postgres

import (
	"context"

	"insights-api/internal/status/core/ports"
)

// StoreProbe implements the connectivity probe against PostgreSQL.
type StoreProbe struct {
	db DB
}

func NewStoreProbe(db DB) *StoreProbe {
	return &StoreProbe{db: db}
}

var _ ports.StoreProbePort = (*StoreProbe)(nil)

const listTablesSQL = `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public'
	ORDER BY table_name
	LIMIT $1;
`

func (p *StoreProbe) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *StoreProbe) ListTables(ctx context.Context, limit int) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, listTablesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0, max(limit, 0))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
