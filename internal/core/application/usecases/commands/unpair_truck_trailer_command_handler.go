package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// UnpairTruckTrailerCommandHandler closes a pairing ledger entry. The entry
// must exist and still be active; closing an already closed entry is reported
// as an error, never silently absorbed.
type UnpairTruckTrailerCommandHandler struct {
	uowFactory LedgerUoWFactory
	policy     services.Policy
}

// NewUnpairTruckTrailerCommandHandler creates a handler for unpairing operations.
func NewUnpairTruckTrailerCommandHandler(
	uowFactory LedgerUoWFactory,
	policy services.Policy,
) UnpairTruckTrailerCommandHandler {
	return UnpairTruckTrailerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the ledger entry row, stamps the unassigned date and persists
// the closure.
func (h *UnpairTruckTrailerCommandHandler) Handle(ctx context.Context, cmd UnpairTruckTrailerCommand) error {
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

	ledger := uow.AssignmentRepository()
	entry, err := ledger.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = entry.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = ledger.Update(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
