package commands

import (
	"context"
	"time"

	"haulage/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// New orders start in "created" status with no resources committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "ACME-2024-18", "Mombasa Port", "Kampala ICD")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Generates a waybill number and creates the order in "created" status.
// Uses a transaction to ensure the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerRef(),
		cmd.PickupAddress(),
		cmd.DestinationAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
