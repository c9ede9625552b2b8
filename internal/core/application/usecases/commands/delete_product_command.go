package commands

import (
	"errors"

	"github.com/thtta/farmlend/internal/pkg/errs"
	"github.com/thtta/farmlend/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to soft-delete a product. Line
// items referencing it keep their row; reads see the reference as detached.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	id int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to soft-delete a product.
func NewDeleteProductCommand(id int64) (DeleteProductCommand, error) {
	if id <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("id")
	}

	return DeleteProductCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ID returns the identifier of the product to delete.
func (c DeleteProductCommand) ID() int64 {
	return c.id
}
