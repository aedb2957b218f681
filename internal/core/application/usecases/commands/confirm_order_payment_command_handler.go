package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// ConfirmOrderPaymentCommandHandler handles the awaiting-payment-to-paid
// transition. Restricted to the accounts role.
type ConfirmOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewConfirmOrderPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.Policy,
) ConfirmOrderPaymentCommandHandler {
	return ConfirmOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, applies the paid transition and persists the result.
func (h *ConfirmOrderPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderPaymentCommand) error {
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

	if err = aggregate.ConfirmPayment(time.Now().UTC()); err != nil {
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
