package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction.
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

	// DeliveryRepository returns a repository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// ContactRepository returns a repository bound to the current transaction.
	ContactRepository() ContactRepository
}
