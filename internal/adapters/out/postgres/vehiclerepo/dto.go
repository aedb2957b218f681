// Package vehiclerepo persists truck and trailer records in the shared
// vehicles table. Expiry dates and document references are nullable: null
// means not on file.
package vehiclerepo

import (
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle records.
// The plate carries a unique index because the compliance gate resolves
// vehicles by plate number.
type VehicleDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate                string    `gorm:"uniqueIndex"`
	Kind                 string    `gorm:"index"`
	InsuranceExpiry      *time.Time
	InspectionExpiry     *time.Time
	RegionalPermitExpiry *time.Time
	InsuranceDocRef      *string
	InspectionDocRef     *string
	RegionalPermitDocRef *string
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func documentToRef(doc kernel.Document) *string {
	ref, ok := doc.Ref()
	if !ok {
		return nil
	}
	return &ref
}

func documentFromRef(ref *string) (kernel.Document, error) {
	if ref == nil {
		return kernel.MissingDocument(), nil
	}
	return kernel.PresentDocument(*ref)
}

func expiryToDate(e kernel.Expiry) *time.Time {
	date, ok := e.Date()
	if !ok {
		return nil
	}
	return &date
}

func expiryFromDate(date *time.Time) kernel.Expiry {
	if date == nil {
		return kernel.NoExpiry()
	}
	return kernel.ExpiryOn(*date)
}

// fromDomain converts a vehicle record to its database representation.
func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	expiries := v.Expiries()
	docs := v.Documents()

	return VehicleDTO{
		ID:                   v.ID().Bytes(),
		Plate:                v.Plate(),
		Kind:                 string(v.Kind()),
		InsuranceExpiry:      expiryToDate(expiries.Insurance),
		InspectionExpiry:     expiryToDate(expiries.Inspection),
		RegionalPermitExpiry: expiryToDate(expiries.RegionalPermit),
		InsuranceDocRef:      documentToRef(docs.Insurance),
		InspectionDocRef:     documentToRef(docs.Inspection),
		RegionalPermitDocRef: documentToRef(docs.RegionalPermit),
	}
}

// toDomain converts a database DTO back to a vehicle record.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	insuranceDoc, err := documentFromRef(dto.InsuranceDocRef)
	if err != nil {
		return nil, err
	}
	inspectionDoc, err := documentFromRef(dto.InspectionDocRef)
	if err != nil {
		return nil, err
	}
	permitDoc, err := documentFromRef(dto.RegionalPermitDocRef)
	if err != nil {
		return nil, err
	}

	return vehicle.NewVehicle(id, dto.Plate, vehicle.Kind(dto.Kind), vehicle.Expiries{
		Insurance:      expiryFromDate(dto.InsuranceExpiry),
		Inspection:     expiryFromDate(dto.InspectionExpiry),
		RegionalPermit: expiryFromDate(dto.RegionalPermitExpiry),
	}, vehicle.Documents{
		Insurance:      insuranceDoc,
		Inspection:     inspectionDoc,
		RegionalPermit: permitDoc,
	})
}
