package queries

import (
	"context"
	"errors"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler fetches one product with its owning organization.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product lookup queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product, or an ObjectNotFoundError when the id is
// absent or soft-deleted.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var dto productrepo.ProductDTO
	err := h.db.WithContext(ctx).
		Preload("Organization").
		First(&dto, "id = ?", query.ID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductResponse{}, errs.NewObjectNotFoundError("Product", query.ID())
		}
		return ProductResponse{}, err
	}

	return productResponseFromDTO(dto), nil
}
