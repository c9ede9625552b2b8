package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to soft-delete an order. Referenced
// orders and products are untouched; the order's own line items stay tied to
// the hidden row.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to soft-delete an order.
func NewDeleteOrderCommand(id int64) (DeleteOrderCommand, error) {
	if id <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("id")
	}

	return DeleteOrderCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// ID returns the identifier of the order to delete.
func (c DeleteOrderCommand) ID() int64 {
	return c.id
}
