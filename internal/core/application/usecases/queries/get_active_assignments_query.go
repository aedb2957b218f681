package queries

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetActiveAssignmentsQueryIsNotConstructed = errors.New(
	"GetActiveAssignmentsQuery must be created via NewGetActiveAssignmentsQuery constructor",
)

// GetActiveAssignmentsQuery retrieves every open truck-trailer pairing.
//
// Example:
//
//	query := NewGetActiveAssignmentsQuery()
//	handler := NewGetActiveAssignmentsQueryHandler(db)
//
//	pairs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list active pairings: %w", err)
//	}
type GetActiveAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveAssignmentsQuery creates a query for open pairing entries.
// This is a parameterless query.
func NewGetActiveAssignmentsQuery() GetActiveAssignmentsQuery {
	return GetActiveAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAssignmentsQueryIsNotConstructed)
}

// GetActiveAssignmentsQueryResponse is one open pairing with the vehicle
// plates joined in for display.
type GetActiveAssignmentsQueryResponse struct {
	ID           kernel.UUID
	TruckID      kernel.UUID
	TruckPlate   string
	TrailerID    kernel.UUID
	TrailerPlate string
	AssignedDate time.Time
}
