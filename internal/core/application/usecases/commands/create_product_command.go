package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrCreateProductCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product under
// an owning organization.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	category       string
	variety        string
	packaging      string
	organizationID int64

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product. Fields are
// validated with the aggregate's own rules; the organization id is checked
// against live rows by the handler, not here.
func NewCreateProductCommand(category, variety, packaging string, organizationID int64) (CreateProductCommand, error) {
	if _, err := product.NewProduct(category, variety, packaging, organizationID); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		category:       category,
		variety:        variety,
		packaging:      packaging,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Variety returns the product variety.
func (c CreateProductCommand) Variety() string {
	return c.variety
}

// Packaging returns the packaging description.
func (c CreateProductCommand) Packaging() string {
	return c.packaging
}

// OrganizationID returns the id of the owning organization.
func (c CreateProductCommand) OrganizationID() int64 {
	return c.organizationID
}
