package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/vehicle"
	"haulage/internal/core/domain/services"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"
)

// PairTruckTrailerCommandHandler opens a new pairing ledger entry.
// Supersession is implicit: any active entry holding the truck or the trailer
// is closed within the same transaction, so the "one active pairing per
// vehicle" invariant holds without a separate unpair step. Both vehicle rows
// are locked for the duration of the transaction; concurrent pairings touching
// the same vehicle serialize on those locks, and the later one sees (and
// closes) the entry the earlier one committed.
type PairTruckTrailerCommandHandler struct {
	uowFactory LedgerUoWFactory
	policy     services.Policy
}

// NewPairTruckTrailerCommandHandler creates a handler for pairing operations.
func NewPairTruckTrailerCommandHandler(
	uowFactory LedgerUoWFactory,
	policy services.Policy,
) PairTruckTrailerCommandHandler {
	return PairTruckTrailerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks and validates both vehicles, closes any active entries holding
// them, and records the new pairing with the current date.
func (h *PairTruckTrailerCommandHandler) Handle(ctx context.Context, cmd PairTruckTrailerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionManagePairing); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	if err := h.checkKind(ctx, vehicleRepo, cmd.TruckID(), vehicle.KindTruck); err != nil {
		return err
	}
	if err := h.checkKind(ctx, vehicleRepo, cmd.TrailerID(), vehicle.KindTrailer); err != nil {
		return err
	}

	now := time.Now().UTC()
	ledger := uow.AssignmentRepository()

	if err := h.closeActiveByTruck(ctx, ledger, cmd.TruckID(), now); err != nil {
		return err
	}
	if err := h.closeActiveByTrailer(ctx, ledger, cmd.TrailerID(), now); err != nil {
		return err
	}

	entry, err := assignment.NewAssignment(kernel.NewUUID(), cmd.TruckID(), cmd.TrailerID(), now)
	if err != nil {
		return err
	}

	if err = ledger.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *PairTruckTrailerCommandHandler) checkKind(
	ctx context.Context,
	repo ports.VehicleRepository,
	id kernel.UUID,
	kind vehicle.Kind,
) error {
	v, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if v.Kind() != kind {
		return errs.NewValueIsInvalidError(string(kind) + " ID refers to a " + string(v.Kind()))
	}

	return nil
}

func (h *PairTruckTrailerCommandHandler) closeActiveByTruck(
	ctx context.Context,
	ledger ports.AssignmentRepository,
	truckID kernel.UUID,
	now time.Time,
) error {
	active, err := ledger.FindActiveByTruck(ctx, truckID)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}

	if err = active.Close(now); err != nil {
		return err
	}

	return ledger.Update(ctx, active)
}

func (h *PairTruckTrailerCommandHandler) closeActiveByTrailer(
	ctx context.Context,
	ledger ports.AssignmentRepository,
	trailerID kernel.UUID,
	now time.Time,
) error {
	active, err := ledger.FindActiveByTrailer(ctx, trailerID)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}

	// The truck pass may already have closed this entry when the same pair is
	// re-recorded; a second close on a closed entry is a no-op here.
	if !active.IsActive() {
		return nil
	}

	if err = active.Close(now); err != nil {
		return err
	}

	return ledger.Update(ctx, active)
}
