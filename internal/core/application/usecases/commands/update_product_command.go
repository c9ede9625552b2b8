package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrUpdateProductCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to replace a product's three
// descriptive fields. The owning organization is immutable.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	id        int64
	category  string
	variety   string
	packaging string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(id int64, category, variety, packaging string) (UpdateProductCommand, error) {
	if id <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("id")
	}

	// Run the descriptive fields through the aggregate's validation; the
	// owner slot is a placeholder, the real owner is immutable on update.
	if _, err := product.NewProduct(category, variety, packaging, id); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		id:        id,
		category:  category,
		variety:   variety,
		packaging: packaging,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ID returns the identifier of the product to update.
func (c UpdateProductCommand) ID() int64 {
	return c.id
}

// Category returns the replacement category.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Variety returns the replacement variety.
func (c UpdateProductCommand) Variety() string {
	return c.variety
}

// Packaging returns the replacement packaging description.
func (c UpdateProductCommand) Packaging() string {
	return c.packaging
}
