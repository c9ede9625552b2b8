// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: the order row,
// the referenced_orders edge set and the order_products line items; the
// repository keeps the three consistent as one unit.
package orderrepo

import (
	"time"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"
	"github.com/thtta/farmlend/internal/core/domain/model/order"
	"github.com/thtta/farmlend/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// OrderDTO represents the database structure for order rows.
type OrderDTO struct {
	ID               int64 `gorm:"primaryKey"`
	Type             string
	OrganizationID   int64                             `gorm:"index"`
	Organization     *organizationrepo.OrganizationDTO `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ReferencedOrders []ReferencedOrderDTO              `gorm:"foreignKey:OrderID"`
	LineItems        []LineItemDTO                     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ReferencedOrderDTO is one edge of the order-to-order reference set. The
// relation is kept as an explicit edge table rather than bidirectional
// object references, so cycle checks never traverse a live graph.
type ReferencedOrderDTO struct {
	OrderID           int64     `gorm:"primaryKey;autoIncrement:false"`
	ReferencedOrderID int64     `gorm:"primaryKey;autoIncrement:false"`
	Order             *OrderDTO `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ReferencedOrder   *OrderDTO `gorm:"foreignKey:ReferencedOrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (ReferencedOrderDTO) TableName() string {
	return "referenced_orders"
}

// LineItemDTO represents the database structure for order line items.
// ProductID is nullable: deleting a product hard-detaches the reference
// (ON DELETE SET NULL) while the line item itself survives with its order.
type LineItemDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Volume       string
	PricePerUnit string                  `gorm:"column:price_per_unit"`
	ProductID    *int64                  `gorm:"index"`
	Product      *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	OrderID      int64                   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (LineItemDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order aggregate to its database rows. Edge and line
// item rows carry the aggregate id when it is already known (updates); on
// first insert GORM fills the foreign keys after the parent row is created.
func fromDomain(aggregate *order.Order) OrderDTO {
	refs := make([]ReferencedOrderDTO, 0, len(aggregate.ReferencedOrderIDs()))
	for _, refID := range aggregate.ReferencedOrderIDs() {
		refs = append(refs, ReferencedOrderDTO{
			OrderID:           aggregate.ID(),
			ReferencedOrderID: refID,
		})
	}

	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		var productID *int64
		if p := item.Product(); p != nil {
			id := p.ID()
			productID = &id
		}
		items = append(items, LineItemDTO{
			Volume:       item.Volume(),
			PricePerUnit: item.PricePerUnit(),
			ProductID:    productID,
			OrderID:      aggregate.ID(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		Type:             aggregate.Type().String(),
		OrganizationID:   aggregate.OrganizationID(),
		ReferencedOrders: refs,
		LineItems:        items,
	}
}

// toDomain converts database rows back to an order aggregate. The line
// items' products must be preloaded; a nil product marks a detached item.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderType, err := order.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	refs := make([]int64, 0, len(dto.ReferencedOrders))
	for _, edge := range dto.ReferencedOrders {
		refs = append(refs, edge.ReferencedOrderID)
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		var p *product.Product
		if itemDTO.Product != nil {
			p, err = product.RestoreProduct(
				itemDTO.Product.ID,
				itemDTO.Product.Category,
				itemDTO.Product.Variety,
				itemDTO.Product.Packaging,
				itemDTO.Product.OrganizationID,
			)
			if err != nil {
				return nil, err
			}
		}

		item, itemErr := order.RestoreLineItem(itemDTO.ID, itemDTO.Volume, itemDTO.PricePerUnit, p)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, orderType, dto.OrganizationID, refs, items)
}
