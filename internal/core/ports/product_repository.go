package ports

import (
	"context"
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product and assigns its generated id.
	Add(ctx context.Context, p *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *product.Product) error

	// Get retrieves a live product by id. Returns an
	// errs.ObjectNotFoundError when the id is absent or soft-deleted.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetByIDs bulk-fetches live products for the given ids. Ids that do not
	// resolve are simply missing from the result; callers compare counts to
	// detect invalid references.
	GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error)

	// Delete soft-deletes a product by stamping its deletion marker.
	Delete(ctx context.Context, id int64) error

	// PurgeDeletedBefore physically removes rows soft-deleted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
