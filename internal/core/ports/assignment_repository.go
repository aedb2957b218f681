package ports

import (
	"context"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the truck-trailer
// pairing ledger. Entries are created and closed, never deleted; the full
// history is retained for audit.
type AssignmentRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, a *assignment.Assignment) error

	// Update persists changes to an existing ledger entry, i.e. its closure.
	Update(ctx context.Context, a *assignment.Assignment) error

	// Get retrieves a ledger entry by its unique identifier, locking the row
	// for the duration of the surrounding transaction.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// FindActiveByTruck returns the active entry holding the given truck,
	// locking the row, or (nil, nil) when the truck is unpaired. At most one
	// active entry can exist per truck.
	FindActiveByTruck(ctx context.Context, truckID kernel.UUID) (*assignment.Assignment, error)

	// FindActiveByTrailer returns the active entry holding the given trailer,
	// locking the row, or (nil, nil) when the trailer is unpaired.
	FindActiveByTrailer(ctx context.Context, trailerID kernel.UUID) (*assignment.Assignment, error)
}
