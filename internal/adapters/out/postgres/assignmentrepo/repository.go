package assignmentrepo

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM pairing ledger repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Update saves an existing ledger entry to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Where("id = ?", dto.ID).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Get retrieves a ledger entry by ID, locking its row until the surrounding
// transaction ends.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveByTruck retrieves the active entry holding the given truck,
// locking its row, or (nil, nil) when the truck is unpaired. The locked read
// serializes concurrent pairings of the same truck.
func (r *GormAssignmentRepository) FindActiveByTruck(
	ctx context.Context,
	truckID kernel.UUID,
) (*assignment.Assignment, error) {
	return r.findActive(ctx, "truck_id", truckID)
}

// FindActiveByTrailer retrieves the active entry holding the given trailer,
// locking its row, or (nil, nil) when the trailer is unpaired.
func (r *GormAssignmentRepository) FindActiveByTrailer(
	ctx context.Context,
	trailerID kernel.UUID,
) (*assignment.Assignment, error) {
	return r.findActive(ctx, "trailer_id", trailerID)
}

func (r *GormAssignmentRepository) findActive(
	ctx context.Context,
	column string,
	vehicleID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(column+" = ? AND unassigned_date IS NULL", vehicleID.Bytes()).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
