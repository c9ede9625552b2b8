package queries

import (
	"context"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GetAllProductsQueryHandler lists products page by page with their owning
// organizations preloaded.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product listing
// queries.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle returns the requested page in primary-key order plus the meta block
// describing the full result set.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductResponse, pagination.Meta, error) {
	if err := query.Validate(); err != nil {
		return nil, pagination.Meta{}, err
	}

	scope := h.db.WithContext(ctx).Preload("Organization").Order("id ASC")
	page, err := pagination.Paginate[productrepo.ProductDTO](scope, query.Params())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]ProductResponse, 0, len(page.Items))
	for _, dto := range page.Items {
		items = append(items, productResponseFromDTO(dto))
	}

	return items, page.Meta, nil
}
