package ports

import "context"

// StoreProbePort checks reachability of the optional backing data store.
type StoreProbePort interface {
	Ping(ctx context.Context) error
	// ListTables returns up to limit table names from the store.
	ListTables(ctx context.Context, limit int) ([]string, error)
}
