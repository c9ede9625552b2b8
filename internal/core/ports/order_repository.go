package ports

import (
	"context"
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is stored as one unit: the order row, its referenced-order
// edge set and its line items.
type OrderRepository interface {
	// Add persists a new order aggregate (row, edges, line items) and
	// assigns its generated id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a wholesale replacement of an existing aggregate's
	// type, edge set and line items. Previous line items are removed, not
	// orphaned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a live order with its referenced-order ids and line
	// items (products preloaded, nil when detached). Returns an
	// errs.ObjectNotFoundError when the id is absent or soft-deleted.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetExistingIDs is a bulk existence lookup: it returns the subset of
	// ids that resolve to live order rows. Ids that do not resolve are
	// missing from the result; callers compare counts to detect invalid
	// references.
	GetExistingIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Delete soft-deletes an order by stamping its deletion marker. Line
	// items are not stamped; they stay tied to the hidden parent row.
	Delete(ctx context.Context, id int64) error

	// PurgeDeletedBefore physically removes orders soft-deleted before the
	// cutoff; edge rows and line items go with them via FK cascade.
	// Returns the number of order rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
