package driverrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver record to the database.
func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

// Get retrieves a driver record by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a driver record by ID and locks its row until the
// surrounding transaction ends.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, id, true)
}

func (r *GormDriverRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto DriverDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
