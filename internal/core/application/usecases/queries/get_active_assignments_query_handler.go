package queries

import (
	"context"

	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveAssignmentsQueryHandler lists open pairing ledger entries with the
// truck and trailer plates resolved.
type GetActiveAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAssignmentsQueryHandler creates a handler for active pairing queries.
func NewGetActiveAssignmentsQueryHandler(db *gorm.DB) GetActiveAssignmentsQueryHandler {
	return GetActiveAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by assignment date, oldest
// first, so long-standing pairings list ahead of recent ones.
func (h GetActiveAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveAssignmentsQuery,
) ([]GetActiveAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetActiveAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.truck_id,
			t.plate,
			a.trailer_id,
			tr.plate,
			a.assigned_date
		FROM assignments a
		JOIN vehicles t ON t.id = a.truck_id
		JOIN vehicles tr ON tr.id = a.trailer_id
		WHERE a.unassigned_date IS NULL
		ORDER BY a.assigned_date, a.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetActiveAssignmentsQueryResponse
		var id, truckID, trailerID uuid.UUID

		err = rows.Scan(
			&id,
			&truckID,
			&entry.TruckPlate,
			&trailerID,
			&entry.TrailerPlate,
			&entry.AssignedDate,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.TruckID, err = kernel.UUIDFromBytes(truckID[:]); err != nil {
			return nil, err
		}
		if entry.TrailerID, err = kernel.UUIDFromBytes(trailerID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
