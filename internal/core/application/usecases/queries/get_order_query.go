// Package queries contains read-only operations for the haulage service.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregate repositories.
package queries

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lifecycle details.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of a single order.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	CustomerRef        string
	PickupAddress      string
	DestinationAddress string
	Waybill            string
	Status             string
	PaymentStatus      string
	DriverID           *kernel.UUID
	TruckID            *kernel.UUID
	TrailerID          *kernel.UUID
	StartOdometer      *int
	EndOdometer        *int
	InvoiceAmount      *int64
	PodRef             *string
	Overridden         bool
	ComplianceNotes    []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	AssignedAt         *time.Time
	LoadedAt           *time.Time
	DepartedAt         *time.Time
	DeliveredAt        *time.Time
	PaymentRequestedAt *time.Time
	PaidAt             *time.Time
	ClosedAt           *time.Time
}
