// Package driverrepo persists driver records. Document presence is stored as
// nullable reference columns: a null means the document is missing, a value is
// the stored file reference.
package driverrepo

import (
	"time"

	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver records.
type DriverDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                  string
	Role                  string
	LicenseFileRef        *string
	PassportPhotoRef      *string
	ConductCertificateRef *string
	PortPassRef           *string
	LicenseExpiry         *time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
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

// fromDomain converts a driver record to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	docs := d.Documents()

	return DriverDTO{
		ID:                    d.ID().Bytes(),
		Name:                  d.Name(),
		Role:                  driver.RoleDriver,
		LicenseFileRef:        documentToRef(docs.LicenseFile),
		PassportPhotoRef:      documentToRef(docs.PassportPhoto),
		ConductCertificateRef: documentToRef(docs.ConductCertificate),
		PortPassRef:           documentToRef(docs.PortPass),
		LicenseExpiry:         expiryToDate(d.LicenseExpiry()),
	}
}

// toDomain converts a database DTO back to a driver record.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	license, err := documentFromRef(dto.LicenseFileRef)
	if err != nil {
		return nil, err
	}
	passport, err := documentFromRef(dto.PassportPhotoRef)
	if err != nil {
		return nil, err
	}
	conduct, err := documentFromRef(dto.ConductCertificateRef)
	if err != nil {
		return nil, err
	}
	portPass, err := documentFromRef(dto.PortPassRef)
	if err != nil {
		return nil, err
	}

	return driver.NewDriver(id, dto.Name, dto.Role, driver.Documents{
		LicenseFile:        license,
		PassportPhoto:      passport,
		ConductCertificate: conduct,
		PortPass:           portPass,
	}, expiryFromDate(dto.LicenseExpiry))
}
