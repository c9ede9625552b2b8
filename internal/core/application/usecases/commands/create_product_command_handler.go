package commands

import (
	"context"

	"github.com/thtta/farmlend/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for product
// registration. The owning organization is resolved in the same transaction
// that persists the product.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration
// operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the owning organization, persists the product and returns
// the assigned id. A missing organization fails the whole operation with an
// ObjectNotFoundError before anything is written.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
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

	p, err := product.NewProduct(cmd.Category(), cmd.Variety(), cmd.Packaging(), cmd.OrganizationID())
	if err != nil {
		return 0, err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return p.ID(), nil
}
