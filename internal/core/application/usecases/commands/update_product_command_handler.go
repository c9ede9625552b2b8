package commands

import (
	"context"
)

// UpdateProductCommandHandler handles wholesale replacement of a product's
// descriptive fields.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update
// operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, replaces its descriptive fields and persists the
// result. Returns an ObjectNotFoundError when the id does not resolve to a
// live row.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = p.Update(cmd.Category(), cmd.Variety(), cmd.Packaging()); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
