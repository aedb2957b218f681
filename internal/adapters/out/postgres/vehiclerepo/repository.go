package vehiclerepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle record to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Get retrieves a vehicle record by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a vehicle record by ID and locks its row until the
// surrounding transaction ends.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, id, true)
}

func (r *GormVehicleRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto VehicleDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPlate retrieves a vehicle record by its unique plate number.
func (r *GormVehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate")
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", plate)
		}
		return nil, err
	}

	return toDomain(dto)
}
