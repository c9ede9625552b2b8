package commands

import (
	"context"
)

// DeleteOrganizationCommandHandler handles organization soft deletion.
type DeleteOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewDeleteOrganizationCommandHandler creates a handler for organization
// deletion operations.
func NewDeleteOrganizationCommandHandler(uowFactory OrganizationUoWFactory) DeleteOrganizationCommandHandler {
	return DeleteOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft-deletes the organization. Returns an ObjectNotFoundError when
// the id does not resolve to a live row.
func (h *DeleteOrganizationCommandHandler) Handle(ctx context.Context, cmd DeleteOrganizationCommand) error {
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

	if err := uow.OrganizationRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
