package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrUpdateOrganizationCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrUpdateOrganizationCommandIsNotConstructed = errors.New(
	"UpdateOrganizationCommand must be created via NewUpdateOrganizationCommand constructor",
)

// UpdateOrganizationCommand represents a request to replace an organization's
// name and type wholesale. Omitting the type clears it.
type UpdateOrganizationCommand struct { //nolint:recvcheck //using for validation
	id      int64
	name    string
	orgType *organization.Type

	guard guard.ConstructorGuard
}

// NewUpdateOrganizationCommand creates a command to update an organization.
func NewUpdateOrganizationCommand(id int64, name string, orgType *string) (UpdateOrganizationCommand, error) {
	cmd := UpdateOrganizationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if id <= 0 {
		return UpdateOrganizationCommand{}, errs.NewValueIsRequiredError("id")
	}

	parsed, err := parseOrganizationType(orgType)
	if err != nil {
		return UpdateOrganizationCommand{}, err
	}

	if _, err := organization.NewOrganization(name, parsed); err != nil {
		return UpdateOrganizationCommand{}, err
	}

	cmd.id = id
	cmd.name = name
	cmd.orgType = parsed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrganizationCommandIsNotConstructed)
}

// ID returns the identifier of the organization to update.
func (c UpdateOrganizationCommand) ID() int64 {
	return c.id
}

// Name returns the replacement display name.
func (c UpdateOrganizationCommand) Name() string {
	return c.name
}

// OrgType returns the replacement type, or nil to clear it.
func (c UpdateOrganizationCommand) OrgType() *organization.Type {
	return c.orgType
}
