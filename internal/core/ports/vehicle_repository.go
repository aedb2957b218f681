package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for truck and trailer
// records. Vehicles are owned by the fleet-registration collaborator; this
// core only reads them (Add exists for seeding and tests).
type VehicleRepository interface {
	// Add persists a new vehicle record.
	Add(ctx context.Context, v *vehicle.Vehicle) error

	// Get retrieves a vehicle record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle record by its unique identifier and
	// locks its row until the surrounding transaction ends. Vehicle rows are
	// the serialization point for operations committing a vehicle: two
	// transactions locking the same vehicle execute one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByPlate retrieves a vehicle record by its unique plate number.
	GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
}
