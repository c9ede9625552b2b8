package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order soft deletion.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion
// operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft-deletes the order. Returns an ObjectNotFoundError when the id
// does not resolve to a live row.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
