package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. All repositories
// obtained from one unit of work share a single database transaction, so the
// multi-step resolve-then-persist pipelines commit or roll back atomically.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrganizationRepository returns a repository bound to the current transaction.
	OrganizationRepository() OrganizationRepository

	// ProductRepository returns a repository bound to the current transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
