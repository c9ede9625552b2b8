package queries

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrGetOrganizationQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetOrganizationQueryIsNotConstructed = errors.New(
	"GetOrganizationQuery must be created via NewGetOrganizationQuery constructor",
)

// GetOrganizationQuery retrieves a single organization with its owned
// products and orders.
type GetOrganizationQuery struct {
	id int64

	guard guard.ConstructorGuard
}

// NewGetOrganizationQuery creates a by-id organization lookup query.
func NewGetOrganizationQuery(id int64) (GetOrganizationQuery, error) {
	if id <= 0 {
		return GetOrganizationQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetOrganizationQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrganizationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationQueryIsNotConstructed)
}

// ID returns the identifier to look up.
func (q GetOrganizationQuery) ID() int64 {
	return q.id
}
