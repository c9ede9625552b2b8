// Package pagination provides a generic offset-based pagination helper for
// GORM queries. It produces the items of the requested page together with a
// meta block describing the full result set.
package pagination

import (
	"gorm.io/gorm"
)

const (
	// DefaultPage is used when the requested page is missing or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the requested page size is missing or invalid.
	DefaultLimit = 20
)

// Params identifies a page of a result set. Page and Limit are 1-based
// positive integers.
type Params struct {
	Page  int
	Limit int
}

// NewParams builds Params, replacing missing or non-positive values with the
// defaults. Defaulting happens here, at the boundary, so the helper itself
// can assume valid input.
func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Meta describes the position of a page within the full result set.
type Meta struct {
	ItemCount    int   `json:"itemCount"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// NewMeta computes the meta block for a page. TotalPages is the ceiling of
// totalItems divided by the page size.
func NewMeta(itemCount int, totalItems int64, params Params) Meta {
	totalPages := int((totalItems + int64(params.Limit) - 1) / int64(params.Limit))
	return Meta{
		ItemCount:    itemCount,
		TotalItems:   totalItems,
		ItemsPerPage: params.Limit,
		TotalPages:   totalPages,
		CurrentPage:  params.Page,
	}
}

// Page is one page of items plus its meta block.
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// Paginate runs the query twice against the supplied (already scoped) GORM
// handle: once to count the full result set and once to fetch the requested
// window. Soft-deleted rows are excluded by GORM's default scope on models
// carrying gorm.DeletedAt.
func Paginate[T any](db *gorm.DB, params Params) (Page[T], error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	items := make([]T, 0, params.Limit)
	offset := (params.Page - 1) * params.Limit
	if err := db.Session(&gorm.Session{}).Offset(offset).Limit(params.Limit).Find(&items).Error; err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Items: items,
		Meta:  NewMeta(len(items), total, params),
	}, nil
}
