package queries

import (
	"context"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GetAllOrganizationsQueryHandler lists organizations page by page. Reads go
// straight through GORM for the CQRS read side; soft-deleted rows are
// excluded by the model's default scope.
type GetAllOrganizationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrganizationsQueryHandler creates a handler for organization
// listing queries.
func NewGetAllOrganizationsQueryHandler(db *gorm.DB) GetAllOrganizationsQueryHandler {
	return GetAllOrganizationsQueryHandler{db: db}
}

// Handle returns the requested page in primary-key order plus the meta block
// describing the full result set.
func (h GetAllOrganizationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrganizationsQuery,
) ([]OrganizationResponse, pagination.Meta, error) {
	if err := query.Validate(); err != nil {
		return nil, pagination.Meta{}, err
	}

	scope := h.db.WithContext(ctx).Order("id ASC")
	page, err := pagination.Paginate[organizationrepo.OrganizationDTO](scope, query.Params())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	items := make([]OrganizationResponse, 0, len(page.Items))
	for _, dto := range page.Items {
		items = append(items, organizationResponseFromDTO(dto))
	}

	return items, page.Meta, nil
}
