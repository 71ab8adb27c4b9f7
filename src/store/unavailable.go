package store

import "context"

// UnavailableStore is the binding used when no store is configured or
// the configured store could not be bound at startup. Every operation
// fails immediately and the same way, so a missing connection string
// degrades the service instead of crashing it.
type UnavailableStore struct{}

func (UnavailableStore) Kind() string { return "none" }

func (UnavailableStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	return "", ErrStoreUnavailable
}

func (UnavailableStore) Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error) {
	return nil, ErrStoreUnavailable
}

func (UnavailableStore) CollectionNames(ctx context.Context) ([]string, error) {
	return nil, ErrStoreUnavailable
}
