package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its organization, referenced
// orders and line items.
type GetOrderQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a by-id order lookup query.
func NewGetOrderQuery(id int64) (GetOrderQuery, error) {
	if id <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetOrderQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ID returns the identifier to look up.
func (q GetOrderQuery) ID() int64 {
	return q.id
}
