package commands

import (
	"context"
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"
	"haulage/internal/core/domain/services"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"
)

// AssignOrderCommandHandler orchestrates resource commitment to an order.
// Within a single transaction it locks the order row, locks and resolves the
// driver and vehicle records, runs the compliance gate, checks resource
// exclusivity, and applies the assignment. Either every effect lands or none
// does. The vehicle and driver row locks are what serializes two concurrent
// assignments of the same resource: the loser waits, then sees the winner's
// committed order in the exclusivity check.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, services.NewPolicy())
//	cmd, _ := NewAssignOrderCommand(orderID, driverID, truckID, nil, false, actor)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var denied *errs.ComplianceDeniedError
//	    if errors.As(err, &denied) {
//	        // surface denied.Reasons to the caller
//	    }
//	    return err
//	}
type AssignOrderCommandHandler struct {
	uowFactory AssignUoWFactory
	policy     services.Policy
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
// Requires an AssignUoWFactory so order, driver and vehicle reads share one
// transaction, and the authorization policy.
func NewAssignOrderCommandHandler(uowFactory AssignUoWFactory, policy services.Policy) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command.
// The order must exist and be in "created" status. The compliance gate is
// evaluated against the driver and the resolved vehicle plates; a failing
// check aborts the assignment unless an authorized override is requested, in
// which case the failure reasons are recorded on the order. Each resource must
// not already be committed to another active order.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionAssignOrder); err != nil {
		return err
	}
	if cmd.Override() {
		if err := h.policy.Authorize(cmd.Actor(), services.ActionOverrideCompliance); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()

	aggregate, err := ordersRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	truck, err := h.resolveVehicle(ctx, vehicleRepo, cmd.TruckID(), vehicle.KindTruck)
	if err != nil {
		return err
	}

	var trailerPlate *string
	if cmd.TrailerID() != nil {
		trailer, trailerErr := h.resolveVehicle(ctx, vehicleRepo, *cmd.TrailerID(), vehicle.KindTrailer)
		if trailerErr != nil {
			return trailerErr
		}
		plate := trailer.Plate()
		trailerPlate = &plate
	}

	// Lock the driver row as well. A missing driver is not fatal here: the
	// gate reports it as a compliance reason.
	driverRepo := uow.DriverRepository()
	if _, err = driverRepo.GetForUpdate(ctx, cmd.DriverID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	gate := services.NewComplianceGate(driverRepo, vehicleRepo)
	driverID := cmd.DriverID()
	truckPlate := truck.Plate()

	decision, err := gate.Evaluate(ctx, services.EvaluateRequest{
		DriverID:     &driverID,
		TruckPlate:   &truckPlate,
		TrailerPlate: trailerPlate,
		Override:     cmd.Override(),
	}, time.Now().UTC())
	if err != nil {
		return err
	}

	if !decision.Allowed {
		return errs.NewComplianceDeniedError(decision.Reasons)
	}

	if err = h.checkResourceFree(ctx, ordersRepo, aggregate.ID(), ports.ResourceTruck, cmd.TruckID()); err != nil {
		return err
	}
	if cmd.TrailerID() != nil {
		if err = h.checkResourceFree(ctx, ordersRepo, aggregate.ID(), ports.ResourceTrailer, *cmd.TrailerID()); err != nil {
			return err
		}
	}
	if err = h.checkResourceFree(ctx, ordersRepo, aggregate.ID(), ports.ResourceDriver, cmd.DriverID()); err != nil {
		return err
	}

	if err = aggregate.Assign(
		cmd.DriverID(),
		cmd.TruckID(),
		cmd.TrailerID(),
		decision.Overridden,
		decision.Reasons,
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// resolveVehicle loads a vehicle record, locking its row, and checks it is of
// the expected kind. The lock is held until the transaction ends so a second
// assignment of the same vehicle waits behind this one.
func (h *AssignOrderCommandHandler) resolveVehicle(
	ctx context.Context,
	repo ports.VehicleRepository,
	id kernel.UUID,
	kind vehicle.Kind,
) (*vehicle.Vehicle, error) {
	v, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if v.Kind() != kind {
		return nil, errs.NewValueIsInvalidError(string(kind) + " ID refers to a " + string(v.Kind()))
	}

	return v, nil
}

// checkResourceFree returns a ResourceConflictError when another order holds
// the resource in a committed status. The resource rows themselves were locked
// earlier in the transaction, so by the time this runs any concurrent
// assignment of the same resource has either committed (and is visible here)
// or is waiting on the lock.
func (h *AssignOrderCommandHandler) checkResourceFree(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID kernel.UUID,
	kind ports.ResourceKind,
	resourceID kernel.UUID,
) error {
	holder, err := repo.FindCommittedHolder(ctx, kind, resourceID)
	if err != nil {
		return err
	}

	if holder != nil && !holder.ID().IsEqual(orderID) {
		return errs.NewResourceConflictError(string(kind), resourceID.String())
	}

	return nil
}
