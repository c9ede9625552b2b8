package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate: the order row, its edge set and its line
// items in one Create. Referenced order rows themselves are never touched,
// only the edges pointing at them.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	aggregate.SetID(dto.ID)

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a wholesale replacement of the aggregate: the type column
// is rewritten, the edge set is swapped, and line items are deleted and
// re-inserted so no stale item from the previous version is left dangling.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("type", dto.Type)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Order", dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&ReferencedOrderDTO{}).Error; err != nil {
		return err
	}
	if len(dto.ReferencedOrders) > 0 {
		if err := db.Create(&dto.ReferencedOrders).Error; err != nil {
			return err
		}
	}

	if err := db.Unscoped().Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) > 0 {
		if err := db.Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a live order with its edge set and line items. Products are
// preloaded; a soft-deleted product simply comes back detached (nil).
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("ReferencedOrders").
		Preload("LineItems").
		Preload("LineItems.Product").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetExistingIDs returns the subset of ids that resolve to live order rows.
// Duplicate requested ids collapse in the lookup, so callers comparing
// counts implicitly reject them.
func (r *GormOrderRepository) GetExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}

	return existing, nil
}

// Delete soft-deletes an order. Its line items are not stamped: they stay
// tied to the hidden parent row and go away physically when the row is
// purged.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Order", id)
	}
	return nil
}

// PurgeDeletedBefore physically removes orders soft-deleted before the
// cutoff. Edge rows and line items follow via ON DELETE CASCADE.
func (r *GormOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&OrderDTO{})
	return result.RowsAffected, result.Error
}
