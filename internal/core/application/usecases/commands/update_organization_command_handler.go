package commands

import (
	"context"
)

// UpdateOrganizationCommandHandler handles wholesale replacement of an
// organization's mutable fields.
type UpdateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewUpdateOrganizationCommandHandler creates a handler for organization
// update operations.
func NewUpdateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) UpdateOrganizationCommandHandler {
	return UpdateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the organization, applies the replacement fields and persists
// the result. Returns an ObjectNotFoundError when the id does not resolve to
// a live row.
func (h *UpdateOrganizationCommandHandler) Handle(ctx context.Context, cmd UpdateOrganizationCommand) error {
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

	repo := uow.OrganizationRepository()
	org, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = org.Update(cmd.Name(), cmd.OrgType()); err != nil {
		return err
	}

	if err = repo.Update(ctx, org); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
