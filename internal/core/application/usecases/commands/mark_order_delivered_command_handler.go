package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// MarkOrderDeliveredCommandHandler handles the enroute-to-delivered transition.
// Delivery releases the committed resources back to the pool.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewMarkOrderDeliveredCommandHandler creates a handler for the delivered transition.
func NewMarkOrderDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.Policy,
) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, records the proof of delivery and end odometer,
// applies the delivered transition and persists the result.
func (h *MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
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

	if err = aggregate.Deliver(cmd.PodRef(), cmd.EndOdometer(), time.Now().UTC()); err != nil {
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
