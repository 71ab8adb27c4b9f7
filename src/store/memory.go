package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"emeraldshop/src/helpers"
)

// MemoryStore keeps documents in memory, for tests and local runs
// without a database. Data is lost on restart. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

func (m *MemoryStore) Kind() string { return "memory" }

// toDocument deep-copies a record into a Document by round-tripping
// through JSON, so callers never share memory with stored documents.
func toDocument(record any) (Document, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("record is not an object")
	}
	return doc, nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	doc, err := toDocument(record)
	if err != nil {
		return "", &OpError{Op: "insert", Collection: collection, Err: err}
	}
	id := helpers.GenerateUUID()
	doc[IDKey] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], doc)
	return id, nil
}

func (m *MemoryStore) Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []Document
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		copied, err := toDocument(doc)
		if err != nil {
			return nil, &OpError{Op: "query", Collection: collection, Err: err}
		}
		docs = append(docs, copied)
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

func (m *MemoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// matches reports whether every field-equality constraint in filter
// holds for doc. The empty filter matches everything.
func matches(doc Document, filter map[string]any) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}
