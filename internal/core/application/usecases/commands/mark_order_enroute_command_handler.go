package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// MarkOrderEnrouteCommandHandler handles the loaded-to-enroute transition.
type MarkOrderEnrouteCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewMarkOrderEnrouteCommandHandler creates a handler for the enroute transition.
func NewMarkOrderEnrouteCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.Policy,
) MarkOrderEnrouteCommandHandler {
	return MarkOrderEnrouteCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, applies the enroute transition and persists the result.
func (h *MarkOrderEnrouteCommandHandler) Handle(ctx context.Context, cmd MarkOrderEnrouteCommand) error {
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

	if err = aggregate.Depart(time.Now().UTC()); err != nil {
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
