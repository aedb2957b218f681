package queries

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrGetExpiringDocumentsQueryIsNotConstructed = errors.New(
		"GetExpiringDocumentsQuery must be created via NewGetExpiringDocumentsQuery constructor",
	)
	ErrWithinDaysIsInvalid = errors.New("withinDays must be greater than 0")
)

// GetExpiringDocumentsQuery lists driver licenses and vehicle documents that
// are already expired or will expire within the given number of days. Consumed
// by the daily expiry report job and exposed for ad hoc checks.
type GetExpiringDocumentsQuery struct {
	withinDays int

	guard guard.ConstructorGuard
}

// NewGetExpiringDocumentsQuery creates a query with the given look-ahead window.
func NewGetExpiringDocumentsQuery(withinDays int) (GetExpiringDocumentsQuery, error) {
	if withinDays <= 0 {
		return GetExpiringDocumentsQuery{}, ErrWithinDaysIsInvalid
	}

	return GetExpiringDocumentsQuery{
		withinDays: withinDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExpiringDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiringDocumentsQueryIsNotConstructed)
}

// WithinDays returns the look-ahead window in days.
func (q GetExpiringDocumentsQuery) WithinDays() int {
	return q.withinDays
}

// GetExpiringDocumentsQueryResponse is one expiring document. SubjectKind is
// "driver", "truck" or "trailer"; SubjectRef is the driver name or the plate.
type GetExpiringDocumentsQueryResponse struct {
	SubjectKind string
	SubjectID   kernel.UUID
	SubjectRef  string
	Document    string
	ExpiresOn   time.Time
}
