package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/guard"
	"github.com/thtta/farmlend/internal/pkg/pagination"
)

// ErrGetAllOrdersQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves one page of live orders with their full
// relation graph.
type GetAllOrdersQuery struct {
	params pagination.Params

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a paginated order listing query.
func NewGetAllOrdersQuery(page, limit int) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		params: pagination.NewParams(page, limit),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Params returns the normalized pagination window.
func (q GetAllOrdersQuery) Params() pagination.Params {
	return q.params
}
