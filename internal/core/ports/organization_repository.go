// Package ports defines repository and unit-of-work interfaces for the trade
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for organization
// aggregates. Reads never see soft-deleted rows.
type OrganizationRepository interface {
	// Add persists a new organization and assigns its generated id.
	Add(ctx context.Context, org *organization.Organization) error

	// Update persists changes to an existing organization.
	Update(ctx context.Context, org *organization.Organization) error

	// Get retrieves a live organization by id. Returns an
	// errs.ObjectNotFoundError when the id is absent or soft-deleted.
	Get(ctx context.Context, id int64) (*organization.Organization, error)

	// Delete soft-deletes an organization by stamping its deletion marker.
	Delete(ctx context.Context, id int64) error

	// PurgeDeletedBefore physically removes rows soft-deleted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
