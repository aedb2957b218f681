// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"haulage/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// AssignmentRepoFactory provides access to the pairing ledger repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle transition commands.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignUoW manages transactions for the assignment operation, which reads
	// driver and vehicle records and writes the order, all under one lock scope.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// LedgerUoW manages transactions for truck-trailer pairing operations.
	LedgerUoW interface {
		TxManager
		AssignmentRepoFactory
		VehicleRepoFactory
	}

	// LedgerUoWFactory creates new pairing ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}
)
