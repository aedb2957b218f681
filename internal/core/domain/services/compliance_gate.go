package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"
	"haulage/internal/pkg/errs"
)

// DriverProvider resolves driver records for compliance evaluation.
type DriverProvider interface {
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}

// VehicleProvider resolves vehicle records by plate number for compliance
// evaluation. Plate lookup is the gate's contract: the orchestrator resolves
// vehicle IDs to plates before calling.
type VehicleProvider interface {
	GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
}

// EvaluateRequest names the subjects to check. Nil fields are simply not
// evaluated, so the gate can check a driver alone, a vehicle alone, or a
// full driver/truck/trailer combination.
type EvaluateRequest struct {
	DriverID     *kernel.UUID
	TruckPlate   *string
	TrailerPlate *string
	Override     bool
}

// Decision is the gate's verdict. Reasons lists every individual failure and
// is populated even when the decision is allowed through an override, so the
// caller can record the failures for audit.
type Decision struct {
	Allowed    bool
	Overridden bool
	Reasons    []string
}

// ComplianceGate evaluates drivers and vehicles against regulatory document
// presence and expiry. It is a pure read: it never mutates any record and
// never partially applies effects.
//
// Decision rule: allowed = override OR no reasons. An unresolvable driver or
// plate contributes a "not found" reason rather than failing the evaluation;
// only infrastructure faults surface as errors.
type ComplianceGate struct {
	drivers  DriverProvider
	vehicles VehicleProvider
}

// NewComplianceGate creates a gate backed by the given record providers.
func NewComplianceGate(drivers DriverProvider, vehicles VehicleProvider) ComplianceGate {
	return ComplianceGate{
		drivers:  drivers,
		vehicles: vehicles,
	}
}

// Evaluate checks every subject named in the request as of the given time and
// returns the combined decision.
func (g ComplianceGate) Evaluate(ctx context.Context, req EvaluateRequest, now time.Time) (Decision, error) {
	reasons := make([]string, 0)

	if req.DriverID != nil {
		driverReasons, err := g.evaluateDriver(ctx, *req.DriverID, now)
		if err != nil {
			return Decision{}, err
		}
		reasons = append(reasons, driverReasons...)
	}

	if req.TruckPlate != nil {
		truckReasons, err := g.evaluateVehicle(ctx, *req.TruckPlate, "truck", now)
		if err != nil {
			return Decision{}, err
		}
		reasons = append(reasons, truckReasons...)
	}

	if req.TrailerPlate != nil {
		trailerReasons, err := g.evaluateVehicle(ctx, *req.TrailerPlate, "trailer", now)
		if err != nil {
			return Decision{}, err
		}
		reasons = append(reasons, trailerReasons...)
	}

	return Decision{
		Allowed:    req.Override || len(reasons) == 0,
		Overridden: req.Override && len(reasons) > 0,
		Reasons:    reasons,
	}, nil
}

func (g ComplianceGate) evaluateDriver(ctx context.Context, id kernel.UUID, now time.Time) ([]string, error) {
	d, err := g.drivers.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return []string{fmt.Sprintf("Driver not found: %s", id)}, nil
	}
	if err != nil {
		return nil, err
	}

	reasons := make([]string, 0)
	docs := d.Documents()

	if !docs.LicenseFile.IsPresent() {
		reasons = append(reasons, "Missing: driver license file")
	}
	if !docs.PassportPhoto.IsPresent() {
		reasons = append(reasons, "Missing: passport photo")
	}
	if !docs.ConductCertificate.IsPresent() {
		reasons = append(reasons, "Missing: certificate of good conduct")
	}
	if !docs.PortPass.IsPresent() {
		reasons = append(reasons, "Missing: port pass")
	}
	if d.LicenseExpiry().IsExpired(now) {
		reasons = append(reasons, "Expired: driver license")
	}

	return reasons, nil
}

func (g ComplianceGate) evaluateVehicle(ctx context.Context, plate, label string, now time.Time) ([]string, error) {
	v, err := g.vehicles.GetByPlate(ctx, plate)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return []string{fmt.Sprintf("%s not found: %s", capitalize(label), plate)}, nil
	}
	if err != nil {
		return nil, err
	}

	reasons := make([]string, 0)
	expiries := v.Expiries()

	// A vehicle with no insurance expiry on file cannot be presumed compliant.
	if !expiries.Insurance.IsSet() {
		reasons = append(reasons, fmt.Sprintf("Missing: %s insurance expiry date (%s)", label, plate))
	}
	if expiries.Insurance.IsExpired(now) {
		reasons = append(reasons, fmt.Sprintf("Expired: %s insurance (%s)", label, plate))
	}
	if expiries.Inspection.IsExpired(now) {
		reasons = append(reasons, fmt.Sprintf("Expired: %s inspection (%s)", label, plate))
	}
	if expiries.RegionalPermit.IsExpired(now) {
		reasons = append(reasons, fmt.Sprintf("Expired: %s regional permit (%s)", label, plate))
	}

	return reasons, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
