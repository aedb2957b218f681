// Package ports defines repository interfaces for the haulage domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
)

// ResourceKind names the kinds of physical resources an order can commit.
type ResourceKind string

const (
	// ResourceTruck identifies a truck commitment.
	ResourceTruck ResourceKind = "truck"

	// ResourceTrailer identifies a trailer commitment.
	ResourceTrailer ResourceKind = "trailer"

	// ResourceDriver identifies a driver commitment.
	ResourceDriver ResourceKind = "driver"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction. Every read-then-write sequence on an
	// order must go through this method so concurrent transitions serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindCommittedHolder returns the order currently holding the given
	// resource in a committed status (Assigned, Loaded or Enroute), locking
	// the row, or (nil, nil) when the resource is free. At most one such
	// order can exist per resource.
	FindCommittedHolder(ctx context.Context, kind ResourceKind, resourceID kernel.UUID) (*order.Order, error)
}
