package commands_test

import (
	"testing"

	"github.com/thtta/farmlend/internal/core/application/usecases/commands"
	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewCreateOrganizationCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrganizationCommand("Fresh Fruits BV", strPtr("buyer"))
	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruits BV", cmd.Name())
	require.NotNil(t, cmd.OrgType())
	assert.Equal(t, organization.Buyer, *cmd.OrgType())
}

func TestNewCreateOrganizationCommand_TypeIsOptional(t *testing.T) {
	cmd, err := commands.NewCreateOrganizationCommand("Fresh Fruits BV", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.OrgType())
}

func TestNewCreateOrganizationCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateOrganizationCommand("", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrganizationCommand_ShortName(t *testing.T) {
	_, err := commands.NewCreateOrganizationCommand("ab", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrganizationCommand_InvalidType(t *testing.T) {
	_, err := commands.NewCreateOrganizationCommand("Fresh Fruits BV", strPtr("broker"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
