package queries

import (
	"context"
	"errors"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches one order with its full relation graph.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookup queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or an ObjectNotFoundError when the id is absent
// or soft-deleted. A detached line item (product deleted) is returned with a
// null product.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var dto orderrepo.OrderDTO
	err := h.db.WithContext(ctx).
		Preload("Organization").
		Preload("ReferencedOrders.ReferencedOrder").
		Preload("LineItems").
		Preload("LineItems.Product").
		First(&dto, "id = ?", query.ID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("Order", query.ID())
		}
		return OrderResponse{}, err
	}

	return orderResponseFromDTO(dto), nil
}
