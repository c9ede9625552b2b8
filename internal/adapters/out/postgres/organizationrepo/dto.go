// Package organizationrepo provides data transfer objects and mapping
// functions for organization persistence. It implements the repository
// pattern for the organization aggregate, handling the conversion between
// domain entities and database rows.
package organizationrepo

import (
	"time"

	"github.com/thtta/farmlend/internal/core/domain/model/organization"

	"gorm.io/gorm"
)

// OrganizationDTO represents the database structure for organization rows.
// Soft deletion is handled by GORM through the DeletedAt column: deleted
// rows keep their data and drop out of every default-scoped query.
type OrganizationDTO struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	Type      *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// fromDomain converts an organization aggregate to its database row.
func fromDomain(org *organization.Organization) OrganizationDTO {
	var orgType *string
	if t := org.OrgType(); t != nil {
		s := t.String()
		orgType = &s
	}

	return OrganizationDTO{
		ID:   org.ID(),
		Name: org.Name(),
		Type: orgType,
	}
}

// toDomain converts a database row back to an organization aggregate.
func toDomain(dto OrganizationDTO) (*organization.Organization, error) {
	var orgType *organization.Type
	if dto.Type != nil {
		t, err := organization.TypeFromString(*dto.Type)
		if err != nil {
			return nil, err
		}
		orgType = &t
	}

	return organization.RestoreOrganization(dto.ID, dto.Name, orgType)
}
