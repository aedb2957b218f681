package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// MarkOrderLoadedCommandHandler handles the created-to-loaded transition.
// The order must already have a driver and truck committed.
type MarkOrderLoadedCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewMarkOrderLoadedCommandHandler creates a handler for the loaded transition.
func NewMarkOrderLoadedCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.Policy,
) MarkOrderLoadedCommandHandler {
	return MarkOrderLoadedCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, applies the loaded transition and persists the
// result. A missing resource commitment or wrong current status surfaces as an
// invalid transition error from the aggregate.
func (h *MarkOrderLoadedCommandHandler) Handle(ctx context.Context, cmd MarkOrderLoadedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionAdvanceOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	aggregate, err := ordersRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Load(cmd.StartOdometer(), time.Now().UTC()); err != nil {
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
