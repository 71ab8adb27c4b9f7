// Package store is the document store gateway: the single choke point
// between the service and whatever engine actually holds the documents.
package store

import (
	"context"
	"errors"
	"fmt"
)

// IDKey is the well-known key every returned document carries its
// normalized text identifier under.
const IDKey = "_id"

// Document is one stored record plus its assigned identifier. The
// identifier under IDKey is always a string by the time a document
// leaves this package.
type Document = map[string]any

// ErrStoreUnavailable means no usable store binding exists. This is a
// distinct condition from a bound store whose calls fail; diagnostics
// must be able to tell the two apart.
var ErrStoreUnavailable = errors.New("document store is not available")

// DocumentStore is the capability every backend must provide. The
// binding is resolved once at process start and handed to everything
// that persists or reads documents.
type DocumentStore interface {
	// Insert persists one record in the named collection and returns
	// the store-assigned identifier as text.
	Insert(ctx context.Context, collection string, record any) (string, error)

	// Query returns the documents of a collection matching every
	// field-equality constraint in filter. An empty filter matches
	// everything. limit caps the result count; <= 0 means unbounded.
	Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error)

	// CollectionNames lists the collections that exist in the store.
	// Diagnostics only; the product and order flows never call it.
	CollectionNames(ctx context.Context) ([]string, error)

	// Kind names the backend ("mongo", "memory", "none") for
	// diagnostics.
	Kind() string
}

// OpError records a store call that failed against a reachable store.
type OpError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OpError) Error() string {
	if e.Collection != "" {
		return fmt.Sprintf("store %s on %q: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
