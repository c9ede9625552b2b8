package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/guard"
	"github.com/thtta/farmlend/internal/pkg/pagination"
)

// ErrGetAllProductsQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves one page of live products with their owning
// organizations.
type GetAllProductsQuery struct {
	params pagination.Params

	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a paginated product listing query.
func NewGetAllProductsQuery(page, limit int) GetAllProductsQuery {
	return GetAllProductsQuery{
		params: pagination.NewParams(page, limit),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// Params returns the normalized pagination window.
func (q GetAllProductsQuery) Params() pagination.Params {
	return q.params
}
