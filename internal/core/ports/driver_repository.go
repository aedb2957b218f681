package ports

import (
	"context"

	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver records.
// Drivers are owned by the registration collaborator; this core only reads
// them (Add exists for seeding and tests).
type DriverRepository interface {
	// Add persists a new driver record.
	Add(ctx context.Context, d *driver.Driver) error

	// Get retrieves a driver record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver record by its unique identifier and
	// locks its row until the surrounding transaction ends, serializing
	// concurrent operations committing the same driver.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
