package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to that transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no active transaction exists or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no active transaction exists or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository
}
