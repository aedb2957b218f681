package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// CloseOrderCommandHandler handles the paid-to-closed transition, the terminal
// state of the order lifecycle.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewCloseOrderCommandHandler creates a handler for closing paid orders.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory, policy services.Policy) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, applies the closed transition and persists the result.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionRecordPayment); err != nil {
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

	if err = aggregate.Close(time.Now().UTC()); err != nil {
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
