package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrDeleteOrganizationCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrDeleteOrganizationCommandIsNotConstructed = errors.New(
	"DeleteOrganizationCommand must be created via NewDeleteOrganizationCommand constructor",
)

// DeleteOrganizationCommand represents a request to soft-delete an
// organization. Its products and orders are untouched and stay visible.
type DeleteOrganizationCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteOrganizationCommand creates a command to soft-delete an organization.
func NewDeleteOrganizationCommand(id int64) (DeleteOrganizationCommand, error) {
	if id <= 0 {
		return DeleteOrganizationCommand{}, errs.NewValueIsRequiredError("id")
	}

	return DeleteOrganizationCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrganizationCommandIsNotConstructed)
}

// ID returns the identifier of the organization to delete.
func (c DeleteOrganizationCommand) ID() int64 {
	return c.id
}
