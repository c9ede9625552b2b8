package commands

import (
	"context"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/core/domain/model/product"
	"github.com/thtta/farmlend/internal/core/ports"
	"github.com/thtta/farmlend/internal/pkg/errs"
)

// resolveReferencedOrders checks every referenced order id against live rows
// in one bulk lookup. Any id that does not resolve fails the whole set with
// an InvalidReferenceError. Duplicate ids collapse in the lookup and are
// rejected the same way.
func resolveReferencedOrders(ctx context.Context, repo ports.OrderRepository, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := repo.GetExistingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(existing) != len(ids) {
		return errs.NewInvalidReferenceError("Order")
	}

	return nil
}

// resolveLineItems bulk-fetches the distinct product ids named by the line
// inputs and assembles line items in request order. A duplicate product id is
// fetched once but yields an independent line item per input. Any id that
// does not resolve fails the whole set with an InvalidReferenceError.
func resolveLineItems(ctx context.Context, repo ports.ProductRepository, lines []OrderLineInput) ([]*order.LineItem, error) {
	distinct := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		distinct = append(distinct, line.ProductID)
	}

	products, err := repo.GetByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	if len(products) != len(distinct) {
		return nil, errs.NewInvalidReferenceError("Product")
	}

	byID := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	items := make([]*order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewLineItem(line.Volume, line.PricePerUnit, byID[line.ProductID])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
