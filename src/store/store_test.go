package store

import (
	"context"
	"testing"

	"emeraldshop/src/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestMemoryStoreInsertAndQuery(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	id, err := m.Insert(ctx, "product", map[string]any{"title": "Emerald Roses", "price": 39.0})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0][IDKey])
	assert.Equal(t, "Emerald Roses", docs[0]["title"])
	assert.Equal(t, 39.0, docs[0]["price"])
}

func TestMemoryStoreInsertStruct(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		Title string `json:"title"`
	}
	id, err := m.Insert(ctx, "product", record{Title: "Fern"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Fern", docs[0]["title"])
}

func TestMemoryStoreAssignsUniqueIDs(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := m.Insert(ctx, "product", map[string]any{"n": i})
		require.NoError(t, err)
		assert.False(t, seen[id], "identifier %q reused", id)
		seen[id] = true
	}
}

func TestMemoryStorePreservesInsertionOrder(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := m.Insert(ctx, "product", map[string]any{"title": title})
		require.NoError(t, err)
	}

	docs, err := m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0]["title"])
	assert.Equal(t, "b", docs[1]["title"])
	assert.Equal(t, "c", docs[2]["title"])
}

func TestMemoryStoreLimit(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := m.Insert(ctx, "product", map[string]any{"n": i})
		require.NoError(t, err)
	}

	docs, err := m.Query(ctx, "product", map[string]any{}, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 5)
}

func TestMemoryStoreFilterEquality(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.Insert(ctx, "product", map[string]any{"title": "Rose", "category": "bouquet"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "product", map[string]any{"title": "Fern", "category": "plant"})
	require.NoError(t, err)

	docs, err := m.Query(ctx, "product", map[string]any{"category": "plant"}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Fern", docs[0]["title"])
}

func TestMemoryStoreQueryReturnsCopies(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	_, err := m.Insert(ctx, "product", map[string]any{"title": "Rose"})
	require.NoError(t, err)

	docs, err := m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	docs[0]["title"] = "mutated"

	docs, err = m.Query(ctx, "product", map[string]any{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "Rose", docs[0]["title"])
}

func TestMemoryStoreCollectionNames(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	names, err := m.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = m.Insert(ctx, "product", map[string]any{"title": "Rose"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "order", map[string]any{"total": 1.0})
	require.NoError(t, err)

	names, err = m.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"order", "product"}, names)
}

func TestUnavailableStoreFailsUniformly(t *testing.T) {
	var s DocumentStore = UnavailableStore{}
	ctx := context.Background()

	_, err := s.Insert(ctx, "product", map[string]any{})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.Query(ctx, "product", map[string]any{}, 0)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = s.CollectionNames(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.Equal(t, "none", s.Kind())
}

func TestFactoryDegradesWithoutConfiguration(t *testing.T) {
	logger := zap.NewNop().Sugar()

	s := NewDocumentStore(&settings.Arguments{StoreBackend: "mongo"}, logger)
	assert.Equal(t, "none", s.Kind())

	s = NewDocumentStore(&settings.Arguments{StoreBackend: "mongo", DatabaseURL: "mongodb://localhost"}, logger)
	assert.Equal(t, "none", s.Kind(), "database name missing")
}

func TestFactorySelectsMemoryBackend(t *testing.T) {
	s := NewDocumentStore(&settings.Arguments{StoreBackend: "memory"}, zap.NewNop().Sugar())
	assert.Equal(t, "memory", s.Kind())
}

func TestFactoryRejectsUnknownBackend(t *testing.T) {
	s := NewDocumentStore(&settings.Arguments{StoreBackend: "cassandra"}, zap.NewNop().Sugar())
	assert.Equal(t, "none", s.Kind())
}

func TestNormalizeID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), normalizeID(oid))
	assert.Equal(t, "already-text", normalizeID("already-text"))
	assert.Equal(t, "42", normalizeID(42))
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "insert", Collection: "product", Err: assert.AnError}
	assert.Contains(t, err.Error(), "insert")
	assert.Contains(t, err.Error(), "product")
	assert.ErrorIs(t, err, assert.AnError)
}
