package commands

import (
	"errors"
	"slices"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's type,
// reference set and line items wholesale. The owning organization is
// immutable.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	id                 int64
	orderType          order.Type
	referencedOrderIDs []int64
	lines              []OrderLineInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. A reference to
// the order's own id is rejected here, before any database work.
func NewUpdateOrderCommand(
	id int64,
	orderType string,
	referencedOrderIDs []int64,
	lines []OrderLineInput,
) (UpdateOrderCommand, error) {
	if id <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("id")
	}
	parsedType, err := order.TypeFromString(orderType)
	if err != nil {
		return UpdateOrderCommand{}, err
	}
	if slices.Contains(referencedOrderIDs, id) {
		return UpdateOrderCommand{}, errs.ErrSelfReference
	}
	if err := validateOrderLines(lines); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		id:                 id,
		orderType:          parsedType,
		referencedOrderIDs: slices.Clone(referencedOrderIDs),
		lines:              slices.Clone(lines),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// ID returns the identifier of the order to update.
func (c UpdateOrderCommand) ID() int64 {
	return c.id
}

// OrderType returns the replacement trade direction.
func (c UpdateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// ReferencedOrderIDs returns the replacement reference set.
func (c UpdateOrderCommand) ReferencedOrderIDs() []int64 {
	return slices.Clone(c.referencedOrderIDs)
}

// Lines returns the replacement line items in request order.
func (c UpdateOrderCommand) Lines() []OrderLineInput {
	return slices.Clone(c.lines)
}
