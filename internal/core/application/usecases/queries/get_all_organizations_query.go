package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/guard"
	"github.com/thtta/farmlend/internal/pkg/pagination"
)

// ErrGetAllOrganizationsQueryIsNotConstructed is returned when the query was
// not created via its constructor.
var ErrGetAllOrganizationsQueryIsNotConstructed = errors.New(
	"GetAllOrganizationsQuery must be created via NewGetAllOrganizationsQuery constructor",
)

// GetAllOrganizationsQuery retrieves one page of live organizations.
type GetAllOrganizationsQuery struct {
	params pagination.Params

	guard guard.ConstructorGuard
}

// NewGetAllOrganizationsQuery creates a paginated organization listing query.
// Missing or non-positive page values fall back to the defaults.
func NewGetAllOrganizationsQuery(page, limit int) GetAllOrganizationsQuery {
	return GetAllOrganizationsQuery{
		params: pagination.NewParams(page, limit),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrganizationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrganizationsQueryIsNotConstructed)
}

// Params returns the normalized pagination window.
func (q GetAllOrganizationsQuery) Params() pagination.Params {
	return q.params
}
