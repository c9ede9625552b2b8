package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles wholesale replacement of an order's
// type, reference set and line items. Resolution and persistence share one
// transaction, as in order placement.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order (ObjectNotFoundError), resolves the replacement
// references and products (InvalidReferenceError on any miss), swaps the
// aggregate's contents and persists the result. Old line items are removed
// with the swap, not orphaned.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = resolveReferencedOrders(ctx, orderRepo, cmd.ReferencedOrderIDs()); err != nil {
		return err
	}

	items, err := resolveLineItems(ctx, uow.ProductRepository(), cmd.Lines())
	if err != nil {
		return err
	}

	if err = aggregate.Replace(cmd.OrderType(), cmd.ReferencedOrderIDs(), items); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
