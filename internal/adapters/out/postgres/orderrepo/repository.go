package orderrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The full row is written so
// fields cleared on the aggregate are cleared in storage too.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Where("id = ?", dto.ID).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order by ID and locks its row until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindCommittedHolder retrieves the order holding the given resource in a
// committed status, locking its row, or (nil, nil) when the resource is free.
// At most one committed holder can exist per resource; the locked read makes
// a concurrent assignment of the same resource wait and then see this holder.
func (r *GormOrderRepository) FindCommittedHolder(
	ctx context.Context,
	kind ports.ResourceKind,
	resourceID kernel.UUID,
) (*order.Order, error) {
	if err := resourceID.Validate(); err != nil {
		return nil, err
	}

	var column string
	switch kind {
	case ports.ResourceTruck:
		column = "truck_id"
	case ports.ResourceTrailer:
		column = "trailer_id"
	case ports.ResourceDriver:
		column = "driver_id"
	default:
		return nil, errs.NewValueIsInvalidError("resource kind")
	}

	committed := []int{int(order.Assigned), int(order.Loaded), int(order.Enroute)}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(column+" = ? AND status IN ?", resourceID.Bytes(), committed).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
