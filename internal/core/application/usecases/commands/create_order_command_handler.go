package commands

import (
	"context"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order placement: the whole referential
// graph (organization, referenced orders, products) is resolved and the
// aggregate persisted inside one transaction, so a rejected reference leaves
// no partial rows behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement
// operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the organization (ObjectNotFoundError), the referenced
// order ids and the line products (InvalidReferenceError on any miss),
// assembles the aggregate and persists it. Returns the assigned order id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrganizationRepository().Get(ctx, cmd.OrganizationID()); err != nil {
		return 0, err
	}

	if err := resolveReferencedOrders(ctx, uow.OrderRepository(), cmd.ReferencedOrderIDs()); err != nil {
		return 0, err
	}

	items, err := resolveLineItems(ctx, uow.ProductRepository(), cmd.Lines())
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.OrderType(), cmd.OrganizationID(), cmd.ReferencedOrderIDs(), items)
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}
