package commands

import (
	"errors"
	"slices"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one requested line item: a product id plus verbatim
// volume and price strings. The same product id may appear more than once;
// each occurrence becomes an independent line item.
type OrderLineInput struct {
	ProductID    int64
	Volume       string
	PricePerUnit string
}

func validateOrderLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, line := range lines {
		if line.ProductID <= 0 {
			return errs.NewValueIsRequiredError("product_id")
		}
		if line.Volume == "" {
			return errs.NewValueIsRequiredError("volume")
		}
		if line.PricePerUnit == "" {
			return errs.NewValueIsRequiredError("price_per_unit")
		}
	}
	return nil
}

// CreateOrderCommand represents a request to place a new order: a trade
// direction, an owning organization, an optional list of referenced order
// ids and at least one line item.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType          order.Type
	organizationID     int64
	referencedOrderIDs []int64
	lines              []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Local shape is
// validated here; whether the organization, referenced orders and products
// resolve to live rows is the handler's job.
func NewCreateOrderCommand(
	orderType string,
	organizationID int64,
	referencedOrderIDs []int64,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	parsedType, err := order.TypeFromString(orderType)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	if organizationID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("organization_id")
	}
	if err := validateOrderLines(lines); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderType:          parsedType,
		organizationID:     organizationID,
		referencedOrderIDs: slices.Clone(referencedOrderIDs),
		lines:              slices.Clone(lines),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderType returns the parsed trade direction.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// OrganizationID returns the id of the owning organization.
func (c CreateOrderCommand) OrganizationID() int64 {
	return c.organizationID
}

// ReferencedOrderIDs returns the ids of the orders to reference.
func (c CreateOrderCommand) ReferencedOrderIDs() []int64 {
	return slices.Clone(c.referencedOrderIDs)
}

// Lines returns the requested line items in request order.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return slices.Clone(c.lines)
}
