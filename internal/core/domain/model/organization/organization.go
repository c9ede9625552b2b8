package organization

import (
	"errors"
	"fmt"

	"github.com/thtta/farmlend/internal/pkg/errs"
)

// ErrOrganizationIsNotConstructed is returned when an Organization instance
// was not created through NewOrganization or RestoreOrganization.
var ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")

// minNameLength is the minimum accepted length for an organization name.
const minNameLength = 3

// Organization is the aggregate root for a trading party. Organizations own
// products and orders; both resolve their owner through this aggregate's id.
//
// Invariants:
//   - name is non-empty and at least three characters
//   - type, when present, is one of the declared Type values
type Organization struct {
	id      int64
	name    string
	orgType *Type

	isConstructed bool
}

// NewOrganization creates a validated Organization. The id is zero until the
// repository persists the aggregate and assigns the generated key.
func NewOrganization(name string, orgType *Type) (*Organization, error) {
	org := &Organization{isConstructed: true}

	if err := errors.Join(
		org.setName(name),
		org.setType(orgType),
	); err != nil {
		return nil, err
	}

	return org, nil
}

// RestoreOrganization reconstructs an Organization from persistence.
func RestoreOrganization(id int64, name string, orgType *Type) (*Organization, error) {
	org, err := NewOrganization(name, orgType)
	if err != nil {
		return nil, err
	}
	org.id = id
	return org, nil
}

// Validate ensures the Organization was created through a constructor.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}
	return nil
}

// ID returns the organization's identifier (zero before first persistence).
func (o *Organization) ID() int64 {
	return o.id
}

// Name returns the organization's display name.
func (o *Organization) Name() string {
	return o.name
}

// OrgType returns the organization's type, or nil when not set.
func (o *Organization) OrgType() *Type {
	return o.orgType
}

// SetID assigns the database-generated identifier after insertion.
// Called by the repository; has no effect on validation state.
func (o *Organization) SetID(id int64) {
	o.id = id
}

// Update replaces both mutable fields wholesale, validating the new values.
func (o *Organization) Update(name string, orgType *Type) error {
	return errors.Join(
		o.setName(name),
		o.setType(orgType),
	)
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("must be at least %d characters", minNameLength))
	}
	o.name = name
	return nil
}

func (o *Organization) setType(orgType *Type) error {
	if orgType == nil {
		o.orgType = nil
		return nil
	}
	if err := orgType.Validate(); err != nil {
		return err
	}
	o.orgType = orgType
	return nil
}
