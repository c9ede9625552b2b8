// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"time"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// ProductDTO represents the database structure for product rows. The owning
// organization is a hard foreign key: hard-removing an organization cascades
// to its products (normal deletion in this system is soft and never fires
// the cascade).
type ProductDTO struct {
	ID             int64 `gorm:"primaryKey"`
	Category       string
	Variety        string
	Packaging      string
	OrganizationID int64                                `gorm:"index"`
	Organization   *organizationrepo.OrganizationDTO    `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database row.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:             p.ID(),
		Category:       p.Category(),
		Variety:        p.Variety(),
		Packaging:      p.Packaging(),
		OrganizationID: p.OrganizationID(),
	}
}

// toDomain converts a database row back to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Category, dto.Variety, dto.Packaging, dto.OrganizationID)
}
