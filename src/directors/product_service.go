package directors

import (
	"context"

	"emeraldshop/src/schema"
	"emeraldshop/src/settings"
	"emeraldshop/src/store"

	"go.uber.org/zap"
)

// ProductService manages catalog reads and writes.
type ProductService struct {
	store    store.DocumentStore
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

// NewProductService creates a new ProductService
func NewProductService(docStore store.DocumentStore, args *settings.Arguments,
	logger *zap.SugaredLogger) *ProductService {
	return &ProductService{
		store:    docStore,
		settings: args,
		logger:   logger,
	}
}

// ListProducts returns every product document, seeding the sample
// catalog on the first read of an empty collection so a fresh
// deployment never lists an empty shop.
func (s *ProductService) ListProducts(ctx context.Context, limit int64) ([]store.Document, error) {
	docs, err := s.store.Query(ctx, schema.ProductCollection, map[string]any{}, limit)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	// Empty catalog: seed the samples, then re-run the same query.
	// Two concurrent first reads can both land here and seed twice;
	// known limitation, acceptable for single-instance deployments.
	samples := SampleProducts()
	s.logger.Infow("Seeding sample products", "collection", schema.ProductCollection, "count", len(samples))
	for _, p := range samples {
		if _, err := s.store.Insert(ctx, schema.ProductCollection, p); err != nil {
			return nil, err
		}
	}
	return s.store.Query(ctx, schema.ProductCollection, map[string]any{}, limit)
}

// AddProduct validates raw JSON input against the ProductIn shape and
// inserts it. Invalid input never reaches the store.
func (s *ProductService) AddProduct(ctx context.Context, raw []byte) (string, error) {
	product, err := schema.DecodeProduct(raw)
	if err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, schema.ProductCollection, product)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Stored product", "id", id, "title", product.Title)
	return id, nil
}
