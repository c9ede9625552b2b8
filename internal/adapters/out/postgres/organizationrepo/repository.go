package organizationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"
	"github.com/thtta/farmlend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements ports.OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new organization and assigns the generated id to the aggregate.
func (r *GormOrganizationRepository) Add(ctx context.Context, org *organization.Organization) error {
	if err := org.Validate(); err != nil {
		return err
	}

	dto := fromDomain(org)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	org.SetID(dto.ID)

	r.tracker.TrackAggregate(org.ID(), org)
	return nil
}

// Update replaces the mutable columns of an existing organization.
// Both name and type are written unconditionally so a cleared type
// overwrites the stored value.
func (r *GormOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if err := org.Validate(); err != nil {
		return err
	}

	dto := fromDomain(org)
	result := r.db.WithContext(ctx).
		Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "type").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Organization", dto.ID)
	}

	r.tracker.TrackAggregate(org.ID(), org)
	return nil
}

// Get retrieves a live organization by id.
func (r *GormOrganizationRepository) Get(ctx context.Context, id int64) (*organization.Organization, error) {
	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("Organization", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes an organization.
func (r *GormOrganizationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrganizationDTO{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("Organization", id)
	}
	return nil
}

// PurgeDeletedBefore physically removes rows soft-deleted before the cutoff.
func (r *GormOrganizationRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&OrganizationDTO{})
	return result.RowsAffected, result.Error
}
