// Package product provides the Product aggregate. A product describes a
// tradeable good (category, variety, packaging) and is owned by exactly one
// organization; the owner is fixed at creation time.
package product

import (
	"errors"
	"fmt"

	"github.com/thtta/farmlend/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// minFieldLength is the minimum accepted length for the descriptive fields.
const minFieldLength = 3

// Product is the aggregate root for a tradeable good.
//
// Invariants:
//   - category, variety and packaging are non-empty, at least three characters
//   - the owning organization id is set at creation and never changes
type Product struct {
	id             int64
	category       string
	variety        string
	packaging      string
	organizationID int64

	isConstructed bool
}

// NewProduct creates a validated Product owned by the given organization.
// The caller is responsible for resolving organizationID to a live record
// before persisting.
func NewProduct(category, variety, packaging string, organizationID int64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setField(&p.category, "category", category),
		p.setField(&p.variety, "variety", variety),
		p.setField(&p.packaging, "packaging", packaging),
		p.setOrganizationID(organizationID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(id int64, category, variety, packaging string, organizationID int64) (*Product, error) {
	p, err := NewProduct(category, variety, packaging, organizationID)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's identifier (zero before first persistence).
func (p *Product) ID() int64 {
	return p.id
}

// Category returns the product category, e.g. "Apples".
func (p *Product) Category() string {
	return p.category
}

// Variety returns the product variety, e.g. "Golden".
func (p *Product) Variety() string {
	return p.variety
}

// Packaging returns the packaging description, e.g. "18KG Boxes".
func (p *Product) Packaging() string {
	return p.packaging
}

// OrganizationID returns the id of the owning organization.
func (p *Product) OrganizationID() int64 {
	return p.organizationID
}

// SetID assigns the database-generated identifier after insertion.
func (p *Product) SetID(id int64) {
	p.id = id
}

// Update replaces the three descriptive fields wholesale. The owning
// organization is immutable and not part of the update.
func (p *Product) Update(category, variety, packaging string) error {
	return errors.Join(
		p.setField(&p.category, "category", category),
		p.setField(&p.variety, "variety", variety),
		p.setField(&p.packaging, "packaging", packaging),
	)
}

func (p *Product) setField(dst *string, name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(value) < minFieldLength {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("must be at least %d characters", minFieldLength))
	}
	*dst = value
	return nil
}

func (p *Product) setOrganizationID(organizationID int64) error {
	if organizationID <= 0 {
		return errs.NewValueIsRequiredError("organization_id")
	}
	p.organizationID = organizationID
	return nil
}
