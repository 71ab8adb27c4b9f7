package directors

import (
	"context"
	"testing"

	"emeraldshop/src/schema"
	"emeraldshop/src/settings"
	"emeraldshop/src/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductService() (*ProductService, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	return NewProductService(mem, &settings.Arguments{}, zap.NewNop().Sugar()), mem
}

func titles(docs []store.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d["title"].(string))
	}
	return out
}

func TestListProductsSeedsEmptyCatalog(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	docs, err := svc.ListProducts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, docs, 4)

	assert.Equal(t,
		[]string{"Emerald Roses", "Mint Tulip Mix", "Jade Succulent Set", "Forest Fern Basket"},
		titles(docs))
	assert.Equal(t, 39.0, docs[0]["price"])
	assert.Equal(t, 29.0, docs[1]["price"])
	assert.Equal(t, 24.0, docs[2]["price"])
	assert.Equal(t, 34.0, docs[3]["price"])

	for _, d := range docs {
		id, ok := d[store.IDKey].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, id)
	}
}

func TestListProductsDoesNotReseed(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, 0)
	require.NoError(t, err)

	docs, err := svc.ListProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 4, "second listing must not duplicate the samples")
}

func TestListProductsSkipsSeedingNonEmptyCatalog(t *testing.T) {
	svc, mem := newProductService()
	ctx := context.Background()

	_, err := mem.Insert(ctx, schema.ProductCollection, schema.Product{
		Title: "Lone Orchid", Price: 12, Category: "plant", InStock: true,
	})
	require.NoError(t, err)

	docs, err := svc.ListProducts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Lone Orchid", docs[0]["title"])
}

func TestListProductsHonorsLimitWhileSeeding(t *testing.T) {
	svc, mem := newProductService()
	ctx := context.Background()

	docs, err := svc.ListProducts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	// All four samples were still inserted.
	all, err := mem.Query(ctx, schema.ProductCollection, map[string]any{}, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListProductsPropagatesUnavailableStore(t *testing.T) {
	svc := NewProductService(store.UnavailableStore{}, &settings.Arguments{}, zap.NewNop().Sugar())

	_, err := svc.ListProducts(context.Background(), 0)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestAddProductRoundTrip(t *testing.T) {
	svc, mem := newProductService()
	ctx := context.Background()

	id, err := svc.AddProduct(ctx, []byte(`{"title": "Ivy Wreath", "price": 18.5, "category": "decor"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := mem.Query(ctx, schema.ProductCollection, map[string]any{"title": "Ivy Wreath"}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0][store.IDKey])
	assert.Equal(t, 18.5, docs[0]["price"])
	assert.Equal(t, true, docs[0]["in_stock"])
}

func TestAddProductInvalidNeverReachesStore(t *testing.T) {
	svc, mem := newProductService()
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, []byte(`{"title": "", "price": -5}`))
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)

	docs, err := mem.Query(ctx, schema.ProductCollection, map[string]any{}, 0)
	require.NoError(t, err)
	assert.Empty(t, docs, "invalid record must not be persisted")
}
