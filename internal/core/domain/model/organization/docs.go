// Package organization provides the Organization aggregate, the leaf entity
// of the trade model. Products and orders both reference an owning
// organization; its invariants (name length, optional buyer/seller type) are
// enforced at construction and on update.
package organization
