// Package assignment provides the truck-trailer pairing ledger entry for the
// haulage system. An Assignment records which trailer is hitched to which
// truck; closed entries are retained forever as the pairing audit history.
package assignment

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through a factory function.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

	// ErrAssignmentAlreadyClosed is returned when closing an assignment whose
	// unassignment date is already set. Unpairing an inactive entry must
	// surface this instead of silently succeeding.
	ErrAssignmentAlreadyClosed = errors.New("assignment is already closed")
)

// Assignment is a ledger entry pairing one truck with one trailer.
//
// Invariants:
//   - truckID and trailerID are set at creation and never change
//   - the entry is active while unassignedDate is nil
//   - for any truck or trailer at most one active entry exists at a time
//     (enforced transactionally by the pairing command, not by this type)
//   - entries are closed, never deleted
type Assignment struct {
	id             kernel.UUID
	truckID        kernel.UUID
	trailerID      kernel.UUID
	assignedDate   time.Time
	unassignedDate *time.Time

	isConstructed bool
}

// NewAssignment creates an active pairing of a truck and a trailer.
func NewAssignment(id, truckID, trailerID kernel.UUID, now time.Time) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := truckID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("truckID", err)
	}
	if err := trailerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("trailerID", err)
	}

	return &Assignment{
		id:            id,
		truckID:       truckID,
		trailerID:     trailerID,
		assignedDate:  now,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(
	id, truckID, trailerID kernel.UUID,
	assignedDate time.Time,
	unassignedDate *time.Time,
) (*Assignment, error) {
	a, err := NewAssignment(id, truckID, trailerID, assignedDate)
	if err != nil {
		return nil, err
	}

	a.unassignedDate = unassignedDate
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the ledger entry's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// Truck returns the paired truck's ID.
func (a *Assignment) Truck() kernel.UUID { return a.truckID }

// Trailer returns the paired trailer's ID.
func (a *Assignment) Trailer() kernel.UUID { return a.trailerID }

// AssignedDate returns when the pairing was created.
func (a *Assignment) AssignedDate() time.Time { return a.assignedDate }

// UnassignedDate returns when the pairing was closed, or nil while active.
func (a *Assignment) UnassignedDate() *time.Time { return a.unassignedDate }

// IsActive reports whether the pairing is current, i.e. not yet closed.
func (a *Assignment) IsActive() bool {
	return a.unassignedDate == nil
}

// Close ends the pairing at the given time. Closing an already closed entry
// returns ErrAssignmentAlreadyClosed and leaves the entry unmodified.
func (a *Assignment) Close(now time.Time) error {
	if a.unassignedDate != nil {
		return ErrAssignmentAlreadyClosed
	}

	a.unassignedDate = &now
	return nil
}
