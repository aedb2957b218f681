package queries

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetAssignmentHistoryQueryIsNotConstructed = errors.New(
	"GetAssignmentHistoryQuery must be created via NewGetAssignmentHistoryQuery constructor",
)

// GetAssignmentHistoryQuery retrieves the full pairing ledger, optionally
// narrowed to one truck. History is append-only, so this is the audit trail
// of which trailer each truck pulled and when.
type GetAssignmentHistoryQuery struct {
	truckID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentHistoryQuery creates a history query. A nil truckID returns
// the whole ledger.
func NewGetAssignmentHistoryQuery(truckID *kernel.UUID) (GetAssignmentHistoryQuery, error) {
	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return GetAssignmentHistoryQuery{}, err
		}
	}

	return GetAssignmentHistoryQuery{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentHistoryQueryIsNotConstructed)
}

// TruckID returns the truck filter, or nil for the whole ledger.
func (q GetAssignmentHistoryQuery) TruckID() *kernel.UUID {
	return q.truckID
}

// GetAssignmentHistoryQueryResponse is one ledger entry, open or closed.
type GetAssignmentHistoryQueryResponse struct {
	ID             kernel.UUID
	TruckID        kernel.UUID
	TruckPlate     string
	TrailerID      kernel.UUID
	TrailerPlate   string
	AssignedDate   time.Time
	UnassignedDate *time.Time
}
