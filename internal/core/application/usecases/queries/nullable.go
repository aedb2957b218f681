package queries

import (
	"database/sql"
	"time"

	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Scan helpers converting SQL nullable columns into the pointer fields used
// by the query response structs.

func nullableUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}

	i := int(v.Int64)
	return &i
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}

	t := v.Time
	return &t
}
