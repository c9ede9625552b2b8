package queries

import (
	"context"
	"errors"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrganizationQueryHandler fetches one organization together with the
// products and orders it owns. The owned collections are loaded with
// separate finds so the parent DTO stays free of child relations.
type GetOrganizationQueryHandler struct {
	db *gorm.DB
}

// NewGetOrganizationQueryHandler creates a handler for organization lookup
// queries.
func NewGetOrganizationQueryHandler(db *gorm.DB) GetOrganizationQueryHandler {
	return GetOrganizationQueryHandler{db: db}
}

// Handle returns the organization detail, or an ObjectNotFoundError when the
// id is absent or soft-deleted.
func (h GetOrganizationQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationQuery,
) (OrganizationDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrganizationDetailResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var dto organizationrepo.OrganizationDTO
	if err := db.First(&dto, "id = ?", query.ID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrganizationDetailResponse{}, errs.NewObjectNotFoundError("Organization", query.ID())
		}
		return OrganizationDetailResponse{}, err
	}

	var productDTOs []productrepo.ProductDTO
	if err := db.Order("id ASC").Find(&productDTOs, "organization_id = ?", dto.ID).Error; err != nil {
		return OrganizationDetailResponse{}, err
	}

	var orderDTOs []orderrepo.OrderDTO
	if err := db.Order("id ASC").Find(&orderDTOs, "organization_id = ?", dto.ID).Error; err != nil {
		return OrganizationDetailResponse{}, err
	}

	detail := OrganizationDetailResponse{
		OrganizationResponse: organizationResponseFromDTO(dto),
		Products:             make([]ProductResponse, 0, len(productDTOs)),
		Orders:               make([]OrderSummaryResponse, 0, len(orderDTOs)),
	}
	for _, p := range productDTOs {
		detail.Products = append(detail.Products, productResponseFromDTO(p))
	}
	for _, o := range orderDTOs {
		detail.Orders = append(detail.Orders, orderSummaryFromDTO(o))
	}

	return detail, nil
}
