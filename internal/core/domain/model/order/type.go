package order

import (
	"fmt"

	"github.com/thtta/farmlend/internal/pkg/errs"
)

// Type is the trade direction of an order.
type Type string

const (
	// Buy marks an order purchasing produce.
	Buy Type = "buy"

	// Sell marks an order offering produce.
	Sell Type = "sell"
)

// TypeFromString parses and validates an order type.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the type is one of the declared values.
func (t Type) Validate() error {
	switch t {
	case Buy, Sell:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
