package order

import (
	"errors"
	"slices"

	"github.com/thtta/farmlend/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a trade. It owns its line items and a set
// of references to other orders; the whole graph is persisted and replaced as
// one consistency unit.
//
// Invariants:
//   - type is one of the declared Type values
//   - the owning organization id is set at creation and never changes
//   - at least one line item is present
//   - referencedOrderIDs never contains the order's own id; vacuously true at
//     creation (the id is unknown until persistence) and enforced on Replace
//
// References are held as ids rather than object pointers, so cycle checks
// never traverse a live graph.
type Order struct {
	id                 int64
	orderType          Type
	organizationID     int64
	referencedOrderIDs []int64
	lineItems          []*LineItem

	isConstructed bool
}

// NewOrder assembles a validated Order aggregate. Callers must have resolved
// organizationID, every referenced order id and every line item's product to
// live records before persisting; the aggregate itself only enforces local
// invariants.
func NewOrder(orderType Type, organizationID int64, referencedOrderIDs []int64, lineItems []*LineItem) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setType(orderType),
		o.setOrganizationID(organizationID),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}
	o.referencedOrderIDs = slices.Clone(referencedOrderIDs)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id int64,
	orderType Type,
	organizationID int64,
	referencedOrderIDs []int64,
	lineItems []*LineItem,
) (*Order, error) {
	o, err := NewOrder(orderType, organizationID, referencedOrderIDs, lineItems)
	if err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier (zero before first persistence).
func (o *Order) ID() int64 {
	return o.id
}

// Type returns the order's trade direction.
func (o *Order) Type() Type {
	return o.orderType
}

// OrganizationID returns the id of the owning organization.
func (o *Order) OrganizationID() int64 {
	return o.organizationID
}

// ReferencedOrderIDs returns the ids of the orders this order references.
func (o *Order) ReferencedOrderIDs() []int64 {
	return slices.Clone(o.referencedOrderIDs)
}

// LineItems returns the order's line items in request order.
func (o *Order) LineItems() []*LineItem {
	return slices.Clone(o.lineItems)
}

// SetID assigns the database-generated identifier after insertion.
func (o *Order) SetID(id int64) {
	o.id = id
}

// Replace swaps the order's type, reference set and line items wholesale.
// The owning organization is not touched. Returns errs.ErrSelfReference if
// the new reference set names this order's own id.
func (o *Order) Replace(orderType Type, referencedOrderIDs []int64, lineItems []*LineItem) error {
	if o.id != 0 && slices.Contains(referencedOrderIDs, o.id) {
		return errs.ErrSelfReference
	}

	if err := errors.Join(
		o.setType(orderType),
		o.setLineItems(lineItems),
	); err != nil {
		return err
	}
	o.referencedOrderIDs = slices.Clone(referencedOrderIDs)

	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setOrganizationID(organizationID int64) error {
	if organizationID <= 0 {
		return errs.NewValueIsRequiredError("organization_id")
	}
	o.organizationID = organizationID
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = slices.Clone(lineItems)
	return nil
}
