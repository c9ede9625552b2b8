package queries

import (
	"context"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders page by page with organization,
// referenced orders and line items (with products) preloaded.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the requested page in primary-key order plus the meta block
// describing the full result set.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, pagination.Meta, error) {
	if err := query.Validate(); err != nil {
		return nil, pagination.Meta{}, err
	}

	scope := h.db.WithContext(ctx).
		Preload("Organization").
		Preload("ReferencedOrders.ReferencedOrder").
		Preload("LineItems").
		Preload("LineItems.Product").
		Order("id ASC")
	page, err := pagination.Paginate[orderrepo.OrderDTO](scope, query.Params())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]OrderResponse, 0, len(page.Items))
	for _, dto := range page.Items {
		items = append(items, orderResponseFromDTO(dto))
	}

	return items, page.Meta, nil
}
