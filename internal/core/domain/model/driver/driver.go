// Package driver provides the read model for drivers consulted by the
// assignment core. Driver records are owned by the driver-registration
// collaborator; this core reads them to evaluate regulatory compliance and
// never mutates them.
package driver

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

// RoleDriver is the only subject role this model accepts. Other staff roles
// exist in the credential collaborator but are never assignable to orders.
const RoleDriver = "driver"

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through the NewDriver factory function.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver")

// Documents groups the regulatory documents a driver must have on file
// before being assigned to an order.
type Documents struct {
	LicenseFile        kernel.Document
	PassportPhoto      kernel.Document
	ConductCertificate kernel.Document
	PortPass           kernel.Document
}

// Driver is the compliance-relevant view of a driver record.
type Driver struct {
	id            kernel.UUID
	name          string
	documents     Documents
	licenseExpiry kernel.Expiry

	isConstructed bool
}

// NewDriver creates a Driver read model. The role marker restricts the model
// to driver subjects: any other role is rejected rather than silently carried.
func NewDriver(id kernel.UUID, name, role string, documents Documents, licenseExpiry kernel.Expiry) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if role != RoleDriver {
		return nil, errs.NewValueIsInvalidError("role must be driver")
	}

	return &Driver{
		id:            id,
		name:          name,
		documents:     documents,
		licenseExpiry: licenseExpiry,
		isConstructed: true,
	}, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Documents returns the driver's regulatory documents.
func (d *Driver) Documents() Documents { return d.documents }

// LicenseExpiry returns the driver's license expiry date, if on file.
func (d *Driver) LicenseExpiry() kernel.Expiry { return d.licenseExpiry }
