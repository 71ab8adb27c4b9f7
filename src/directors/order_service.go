package directors

import (
	"context"

	"emeraldshop/src/schema"
	"emeraldshop/src/settings"
	"emeraldshop/src/store"

	"go.uber.org/zap"
)

// OrderService manages order submissions. The order collection starts
// empty and is never seeded.
type OrderService struct {
	store    store.DocumentStore
	settings *settings.Arguments
	logger   *zap.SugaredLogger
}

// NewOrderService creates a new OrderService
func NewOrderService(docStore store.DocumentStore, args *settings.Arguments,
	logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		store:    docStore,
		settings: args,
		logger:   logger,
	}
}

// SubmitOrder validates raw JSON input against the OrderIn shape and
// inserts it. The caller-supplied total is stored as given; it is not
// checked against the item sum.
func (s *OrderService) SubmitOrder(ctx context.Context, raw []byte) (string, error) {
	order, err := schema.DecodeOrder(raw)
	if err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, schema.OrderCollection, order)
	if err != nil {
		return "", err
	}
	s.logger.Infow("Received order", "id", id, "items", len(order.Items), "total", order.Total)
	return id, nil
}
