// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its relational
// representation.
package orderrepo

import (
	"strings"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The resource columns are indexed because the committed-holder exclusivity
// check filters on them together with status.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerRef        string
	PickupAddress      string
	DestinationAddress string
	Waybill            string     `gorm:"uniqueIndex"`
	DriverID           *uuid.UUID `gorm:"type:uuid;index"`
	TruckID            *uuid.UUID `gorm:"type:uuid;index"`
	TrailerID          *uuid.UUID `gorm:"type:uuid;index"`
	Status             int        `gorm:"index"`
	PaymentStatus      string
	StartOdometer      *int
	EndOdometer        *int
	InvoiceAmount      *int64
	PodRef             *string
	Overridden         bool
	ComplianceNotes    string `gorm:"type:text"`
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

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func optionalUUIDToRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func optionalUUIDFromRaw(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts an order aggregate to its database representation.
// Compliance notes are stored newline-joined; individual notes never contain
// newlines because the error sanitizer strips them upstream.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerRef:        aggregate.CustomerRef(),
		PickupAddress:      aggregate.PickupAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		Waybill:            aggregate.Waybill(),
		DriverID:           optionalUUIDToRaw(aggregate.Driver()),
		TruckID:            optionalUUIDToRaw(aggregate.Truck()),
		TrailerID:          optionalUUIDToRaw(aggregate.Trailer()),
		Status:             int(aggregate.Status()),
		PaymentStatus:      string(aggregate.PaymentStatus()),
		StartOdometer:      aggregate.StartOdometer(),
		EndOdometer:        aggregate.EndOdometer(),
		InvoiceAmount:      aggregate.InvoiceAmount(),
		PodRef:             aggregate.PodRef(),
		Overridden:         aggregate.Overridden(),
		ComplianceNotes:    strings.Join(aggregate.ComplianceNotes(), "\n"),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		AssignedAt:         aggregate.AssignedAt(),
		LoadedAt:           aggregate.LoadedAt(),
		DepartedAt:         aggregate.DepartedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		PaymentRequestedAt: aggregate.PaymentRequestedAt(),
		PaidAt:             aggregate.PaidAt(),
		ClosedAt:           aggregate.ClosedAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate via RestoreOrder,
// which revalidates identifier, status and resource consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := optionalUUIDFromRaw(dto.DriverID)
	if err != nil {
		return nil, err
	}
	truckID, err := optionalUUIDFromRaw(dto.TruckID)
	if err != nil {
		return nil, err
	}
	trailerID, err := optionalUUIDFromRaw(dto.TrailerID)
	if err != nil {
		return nil, err
	}

	notes := []string{}
	if dto.ComplianceNotes != "" {
		notes = strings.Split(dto.ComplianceNotes, "\n")
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                 id,
		CustomerRef:        dto.CustomerRef,
		PickupAddress:      dto.PickupAddress,
		DestinationAddress: dto.DestinationAddress,
		Waybill:            dto.Waybill,
		DriverID:           driverID,
		TruckID:            truckID,
		TrailerID:          trailerID,
		Status:             order.Status(dto.Status),
		PaymentStatus:      order.PaymentStatus(dto.PaymentStatus),
		StartOdometer:      dto.StartOdometer,
		EndOdometer:        dto.EndOdometer,
		InvoiceAmount:      dto.InvoiceAmount,
		PodRef:             dto.PodRef,
		Overridden:         dto.Overridden,
		ComplianceNotes:    notes,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
		AssignedAt:         dto.AssignedAt,
		LoadedAt:           dto.LoadedAt,
		DepartedAt:         dto.DepartedAt,
		DeliveredAt:        dto.DeliveredAt,
		PaymentRequestedAt: dto.PaymentRequestedAt,
		PaidAt:             dto.PaidAt,
		ClosedAt:           dto.ClosedAt,
	})
}
