// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read the persistence DTOs directly and map them to wire-shaped
// read models; the write-side aggregates are never involved.
package queries

import (
	"time"

	"github.com/thtta/farmlend/internal/adapters/out/postgres/orderrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/organizationrepo"
	"github.com/thtta/farmlend/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// OrganizationResponse is the wire representation of an organization row.
type OrganizationResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      *string    `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// OrganizationDetailResponse is an organization with its owned products and
// orders, as returned by the by-id lookup.
type OrganizationDetailResponse struct {
	OrganizationResponse
	Products []ProductResponse      `json:"products"`
	Orders   []OrderSummaryResponse `json:"orders"`
}

// ProductResponse is the wire representation of a product row. The owning
// organization is nested when the read loaded it.
type ProductResponse struct {
	ID           int64                 `json:"id"`
	Category     string                `json:"category"`
	Variety      string                `json:"variety"`
	Packaging    string                `json:"packaging"`
	Organization *OrganizationResponse `json:"organization,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	DeletedAt    *time.Time            `json:"deleted_at"`
}

// OrderSummaryResponse is an order row without its relations, used where a
// full order would recurse (referenced orders, organization detail).
type OrderSummaryResponse struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// LineItemResponse is the wire representation of a line item. Product is
// null when the referenced product has been deleted.
type LineItemResponse struct {
	ID           int64            `json:"id"`
	Volume       string           `json:"volume"`
	PricePerUnit string           `json:"price_per_unit"`
	Product      *ProductResponse `json:"product"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// OrderResponse is the full wire representation of an order with its
// organization, referenced orders and line items.
type OrderResponse struct {
	ID               int64                  `json:"id"`
	Type             string                 `json:"type"`
	Organization     *OrganizationResponse  `json:"organization"`
	ReferencedOrders []OrderSummaryResponse `json:"referencedOrders"`
	LineItems        []LineItemResponse     `json:"lineItems"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	DeletedAt        *time.Time             `json:"deleted_at"`
}

func deletedAt(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

func organizationResponseFromDTO(dto organizationrepo.OrganizationDTO) OrganizationResponse {
	return OrganizationResponse{
		ID:        dto.ID,
		Name:      dto.Name,
		Type:      dto.Type,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		DeletedAt: deletedAt(dto.DeletedAt),
	}
}

func productResponseFromDTO(dto productrepo.ProductDTO) ProductResponse {
	resp := ProductResponse{
		ID:        dto.ID,
		Category:  dto.Category,
		Variety:   dto.Variety,
		Packaging: dto.Packaging,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		DeletedAt: deletedAt(dto.DeletedAt),
	}
	if dto.Organization != nil {
		org := organizationResponseFromDTO(*dto.Organization)
		resp.Organization = &org
	}
	return resp
}

func orderSummaryFromDTO(dto orderrepo.OrderDTO) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:        dto.ID,
		Type:      dto.Type,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		DeletedAt: deletedAt(dto.DeletedAt),
	}
}

func lineItemResponseFromDTO(dto orderrepo.LineItemDTO) LineItemResponse {
	resp := LineItemResponse{
		ID:           dto.ID,
		Volume:       dto.Volume,
		PricePerUnit: dto.PricePerUnit,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
	if dto.Product != nil {
		p := productResponseFromDTO(*dto.Product)
		resp.Product = &p
	}
	return resp
}

// orderResponseFromDTO maps an order row with preloaded relations. Edges
// whose target order was soft-deleted come back without a loaded row and are
// left out, matching the live-rows-only read contract.
func orderResponseFromDTO(dto orderrepo.OrderDTO) OrderResponse {
	resp := OrderResponse{
		ID:               dto.ID,
		Type:             dto.Type,
		ReferencedOrders: make([]OrderSummaryResponse, 0, len(dto.ReferencedOrders)),
		LineItems:        make([]LineItemResponse, 0, len(dto.LineItems)),
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
		DeletedAt:        deletedAt(dto.DeletedAt),
	}
	if dto.Organization != nil {
		org := organizationResponseFromDTO(*dto.Organization)
		resp.Organization = &org
	}
	for _, edge := range dto.ReferencedOrders {
		if edge.ReferencedOrder == nil {
			continue
		}
		resp.ReferencedOrders = append(resp.ReferencedOrders, orderSummaryFromDTO(*edge.ReferencedOrder))
	}
	for _, item := range dto.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponseFromDTO(item))
	}
	return resp
}
