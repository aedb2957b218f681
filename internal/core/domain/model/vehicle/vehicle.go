// Package vehicle provides the read model for trucks and trailers consulted
// by the assignment core. Vehicle records are owned by the fleet-registration
// collaborator; this core reads them to evaluate regulatory compliance and
// never mutates them.
package vehicle

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

// Kind distinguishes trucks from trailers in the shared vehicles table.
type Kind string

const (
	// KindTruck marks a powered vehicle.
	KindTruck Kind = "truck"

	// KindTrailer marks an unpowered trailer towed by a truck.
	KindTrailer Kind = "trailer"
)

// Validate checks that the kind is one of the defined vehicle kinds.
func (k Kind) Validate() error {
	if k != KindTruck && k != KindTrailer {
		return errs.NewValueIsInvalidError("vehicle kind must be truck or trailer")
	}
	return nil
}

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through the NewVehicle factory function.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle")

// Expiries groups the regulatory expiry dates tracked per vehicle.
type Expiries struct {
	Insurance      kernel.Expiry
	Inspection     kernel.Expiry
	RegionalPermit kernel.Expiry
}

// Documents groups the uploaded document references backing the expiries.
type Documents struct {
	Insurance      kernel.Document
	Inspection     kernel.Document
	RegionalPermit kernel.Document
}

// Vehicle is the compliance-relevant view of a truck or trailer record.
// The plate number is unique fleet-wide and is the identifier the compliance
// gate looks vehicles up by.
type Vehicle struct {
	id        kernel.UUID
	plate     string
	kind      Kind
	expiries  Expiries
	documents Documents

	isConstructed bool
}

// NewVehicle creates a Vehicle read model.
func NewVehicle(id kernel.UUID, plate string, kind Kind, expiries Expiries, documents Documents) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:            id,
		plate:         plate,
		kind:          kind,
		expiries:      expiries,
		documents:     documents,
		isConstructed: true,
	}, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// Plate returns the vehicle's unique plate number.
func (v *Vehicle) Plate() string { return v.plate }

// Kind reports whether the vehicle is a truck or a trailer.
func (v *Vehicle) Kind() Kind { return v.kind }

// Expiries returns the vehicle's regulatory expiry dates.
func (v *Vehicle) Expiries() Expiries { return v.expiries }

// Documents returns the vehicle's uploaded document references.
func (v *Vehicle) Documents() Documents { return v.documents }
