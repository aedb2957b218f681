// Package assignmentrepo persists the truck-trailer pairing ledger. Entries
// are inserted when a pairing opens and updated once when it closes; rows are
// never deleted.
package assignmentrepo

import (
	"time"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting pairing
// ledger entries. The vehicle columns are indexed for the active-entry
// lookups, which filter on vehicle plus a null unassigned date.
type AssignmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID        uuid.UUID `gorm:"type:uuid;index"`
	TrailerID      uuid.UUID `gorm:"type:uuid;index"`
	AssignedDate   time.Time
	UnassignedDate *time.Time
}

// TableName specifies the database table name for pairing ledger entries.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:             a.ID().Bytes(),
		TruckID:        a.Truck().Bytes(),
		TrailerID:      a.Trailer().Bytes(),
		AssignedDate:   a.AssignedDate(),
		UnassignedDate: a.UnassignedDate(),
	}
}

// toDomain converts a database DTO back to a ledger entry.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}
	trailerID, err := kernel.UUIDFromBytes(dto.TrailerID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, truckID, trailerID, dto.AssignedDate, dto.UnassignedDate)
}
