package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrCreateOrganizationCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrCreateOrganizationCommandIsNotConstructed = errors.New(
	"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
)

// CreateOrganizationCommand represents a request to register a new trading
// organization. The type is optional; when present it must parse to a valid
// organization type.
type CreateOrganizationCommand struct { //nolint:recvcheck //using for validation
	name    string
	orgType *organization.Type

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates a command to register an organization.
// Name and type are validated with the aggregate's own rules, so a command
// that constructs always produces a persistable aggregate.
func NewCreateOrganizationCommand(name string, orgType *string) (CreateOrganizationCommand, error) {
	cmd := CreateOrganizationCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsed, err := parseOrganizationType(orgType)
	if err != nil {
		return CreateOrganizationCommand{}, err
	}

	if _, err := organization.NewOrganization(name, parsed); err != nil {
		return CreateOrganizationCommand{}, err
	}

	cmd.name = name
	cmd.orgType = parsed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// Name returns the organization's display name.
func (c CreateOrganizationCommand) Name() string {
	return c.name
}

// OrgType returns the parsed organization type, or nil when omitted.
func (c CreateOrganizationCommand) OrgType() *organization.Type {
	return c.orgType
}

// parseOrganizationType parses an optional type string. A nil input stays nil.
func parseOrganizationType(s *string) (*organization.Type, error) {
	if s == nil {
		return nil, nil
	}
	t, err := organization.TypeFromString(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
