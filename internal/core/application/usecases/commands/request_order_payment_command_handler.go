package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/services"
)

// RequestOrderPaymentCommandHandler handles the delivered-to-awaiting-payment
// transition. Restricted to the accounts role.
type RequestOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.Policy
}

// NewRequestOrderPaymentCommandHandler creates a handler for invoicing delivered orders.
func NewRequestOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.Policy,
) RequestOrderPaymentCommandHandler {
	return RequestOrderPaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the order row, records the invoice amount and applies the
// awaiting-payment transition.
func (h *RequestOrderPaymentCommandHandler) Handle(ctx context.Context, cmd RequestOrderPaymentCommand) error {
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

	if err = aggregate.RequestPayment(cmd.InvoiceAmount(), time.Now().UTC()); err != nil {
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
