package queries

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpiringDocumentsQueryHandler scans driver and vehicle records for
// documents at or past their expiry horizon.
type GetExpiringDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiringDocumentsQueryHandler creates a handler for expiry report queries.
func NewGetExpiringDocumentsQueryHandler(db *gorm.DB) GetExpiringDocumentsQueryHandler {
	return GetExpiringDocumentsQueryHandler{db: db}
}

// Handle executes the query. The cutoff is now plus the look-ahead window;
// documents with no expiry date on file are not reported.
func (h GetExpiringDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetExpiringDocumentsQuery,
) ([]GetExpiringDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, query.WithinDays())
	results := make([]GetExpiringDocumentsQueryResponse, 0)

	driverRows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, license_expiry
		FROM drivers
		WHERE license_expiry IS NOT NULL AND license_expiry <= ?
		ORDER BY license_expiry
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer driverRows.Close()

	for driverRows.Next() {
		var id uuid.UUID
		var name string
		var expiry time.Time

		if err = driverRows.Scan(&id, &name, &expiry); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		results = append(results, GetExpiringDocumentsQueryResponse{
			SubjectKind: "driver",
			SubjectID:   driverID,
			SubjectRef:  name,
			Document:    "driver license",
			ExpiresOn:   expiry,
		})
	}
	if err = driverRows.Err(); err != nil {
		return nil, err
	}

	vehicleRows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, plate, kind, document, expiry
		FROM (
			SELECT id, plate, kind, 'insurance' AS document, insurance_expiry AS expiry FROM vehicles
			UNION ALL
			SELECT id, plate, kind, 'inspection' AS document, inspection_expiry AS expiry FROM vehicles
			UNION ALL
			SELECT id, plate, kind, 'regional permit' AS document, regional_permit_expiry AS expiry FROM vehicles
		) docs
		WHERE expiry IS NOT NULL AND expiry <= ?
		ORDER BY expiry, plate
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer vehicleRows.Close()

	for vehicleRows.Next() {
		var id uuid.UUID
		var plate, kind, document string
		var expiry time.Time

		if err = vehicleRows.Scan(&id, &plate, &kind, &document, &expiry); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		results = append(results, GetExpiringDocumentsQueryResponse{
			SubjectKind: kind,
			SubjectID:   vehicleID,
			SubjectRef:  plate,
			Document:    document,
			ExpiresOn:   expiry,
		})
	}
	if err = vehicleRows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
