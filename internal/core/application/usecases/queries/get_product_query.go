package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrGetProductQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single product with its owning organization.
type GetProductQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a by-id product lookup query.
func NewGetProductQuery(id int64) (GetProductQuery, error) {
	if id <= 0 {
		return GetProductQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetProductQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ID returns the identifier to look up.
func (q GetProductQuery) ID() int64 {
	return q.id
}
