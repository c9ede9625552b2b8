package organization

import (
	"fmt"

	"github.com/thtta/farmlend/internal/pkg/errs"
)

// Type classifies an organization's role on the market.
// It is optional: an organization may act as neither a dedicated
// buyer nor a dedicated seller.
type Type string

const (
	// Buyer marks an organization that purchases produce.
	Buyer Type = "buyer"

	// Seller marks an organization that offers produce.
	Seller Type = "seller"
)

// TypeFromString parses and validates an organization type.
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
	case Buyer, Seller:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid organization type", string(t)))
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
