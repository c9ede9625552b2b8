package order

import (
	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/pkg/errs"
)

// LineItem is a purchase or sale entry within an Order, pairing a product
// with a volume and a price. Volume and price are opaque strings
// (e.g. "100KG", "1.5USD/1KG"): they are stored and returned verbatim,
// never parsed.
//
// The product reference is nullable: a line item survives the deletion of
// its product with the reference detached.
type LineItem struct {
	id           int64
	volume       string
	pricePerUnit string
	product      *product.Product

	isConstructed bool
}

// NewLineItem creates a validated line item for the given product. Two line
// items may share the same product; each is an independent entry.
func NewLineItem(volume, pricePerUnit string, p *product.Product) (*LineItem, error) {
	if volume == "" {
		return nil, errs.NewValueIsRequiredError("volume")
	}
	if pricePerUnit == "" {
		return nil, errs.NewValueIsRequiredError("price_per_unit")
	}

	return &LineItem{
		volume:        volume,
		pricePerUnit:  pricePerUnit,
		product:       p,
		isConstructed: true,
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence. The product may
// be nil when it has been deleted since the order was placed.
func RestoreLineItem(id int64, volume, pricePerUnit string, p *product.Product) (*LineItem, error) {
	item, err := NewLineItem(volume, pricePerUnit, p)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

// Validate ensures the line item was created through a factory function.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the line item's identifier (zero before first persistence).
func (li *LineItem) ID() int64 {
	return li.id
}

// Volume returns the verbatim volume string.
func (li *LineItem) Volume() string {
	return li.volume
}

// PricePerUnit returns the verbatim price string.
func (li *LineItem) PricePerUnit() string {
	return li.pricePerUnit
}

// Product returns the referenced product, or nil when detached.
func (li *LineItem) Product() *product.Product {
	return li.product
}
