package queries

import (
	"context"
	"database/sql"

	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentHistoryQueryHandler lists pairing ledger entries, newest first.
type GetAssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentHistoryQueryHandler creates a handler for ledger history queries.
func NewGetAssignmentHistoryQueryHandler(db *gorm.DB) GetAssignmentHistoryQueryHandler {
	return GetAssignmentHistoryQueryHandler{db: db}
}

// Handle executes the query, applying the truck filter when present.
func (h GetAssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentHistoryQuery,
) ([]GetAssignmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			a.id,
			a.truck_id,
			t.plate,
			a.trailer_id,
			tr.plate,
			a.assigned_date,
			a.unassigned_date
		FROM assignments a
		JOIN vehicles t ON t.id = a.truck_id
		JOIN vehicles tr ON tr.id = a.trailer_id
	`
	args := make([]interface{}, 0, 1)
	if query.TruckID() != nil {
		sqlText += " WHERE a.truck_id = ?"
		args = append(args, query.TruckID().String())
	}
	sqlText += " ORDER BY a.assigned_date DESC, a.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAssignmentHistoryQueryResponse, 0)

	for rows.Next() {
		var entry GetAssignmentHistoryQueryResponse
		var id, truckID, trailerID uuid.UUID
		var unassignedDate sql.NullTime

		err = rows.Scan(
			&id,
			&truckID,
			&entry.TruckPlate,
			&trailerID,
			&entry.TrailerPlate,
			&entry.AssignedDate,
			&unassignedDate,
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
		entry.UnassignedDate = nullableTime(unassignedDate)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
