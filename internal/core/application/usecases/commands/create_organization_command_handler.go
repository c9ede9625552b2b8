package commands

import (
	"context"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"
)

// CreateOrganizationCommandHandler handles the business logic for
// organization registration.
type CreateOrganizationCommandHandler struct {
	uowFactory OrganizationUoWFactory
}

// NewCreateOrganizationCommandHandler creates a handler for organization
// registration operations.
func NewCreateOrganizationCommandHandler(uowFactory OrganizationUoWFactory) CreateOrganizationCommandHandler {
	return CreateOrganizationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the id assigned to the new
// organization. The write runs in its own transaction and rolls back on any
// error.
func (h *CreateOrganizationCommandHandler) Handle(ctx context.Context, cmd CreateOrganizationCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	org, err := organization.NewOrganization(cmd.Name(), cmd.OrgType())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrganizationRepository().Add(ctx, org); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return org.ID(), nil
}
