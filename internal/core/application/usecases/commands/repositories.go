// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/thtta/farmlend/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrganizationRepoFactory provides access to the organization repository
	// within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// ProductRepoFactory provides access to the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrganizationUoW manages transactions for organization-only operations.
	OrganizationUoW interface {
		TxManager
		OrganizationRepoFactory
	}

	// OrganizationUoWFactory creates new organization unit of work instances.
	OrganizationUoWFactory interface {
		Create() OrganizationUoW
	}

	// ProductUoW manages transactions for product operations. Product creation
	// also resolves the owning organization, so both repositories are exposed.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		OrganizationRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages transactions across all three aggregates. Order assembly
	// resolves organizations, products and referenced orders before a single
	// commit, and the retention purge sweeps all three tables in one go.
	UoW interface {
		TxManager
		OrganizationRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
