package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var (
	ErrRequestOrderPaymentCommandIsNotConstructed = errors.New(
		"RequestOrderPaymentCommand must be created via NewRequestOrderPaymentCommand constructor",
	)
	ErrInvoiceAmountIsInvalid = errors.New("invoice amount must be greater than 0")
)

// RequestOrderPaymentCommand represents a request to invoice a delivered order.
// The amount is in the minor currency unit (cents).
type RequestOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	invoiceAmount int64
	actor         services.Actor

	guard guard.ConstructorGuard
}

// NewRequestOrderPaymentCommand creates a command to move an order into
// awaiting-payment status with the given invoice amount.
func NewRequestOrderPaymentCommand(
	orderID kernel.UUID,
	invoiceAmount int64,
	actor services.Actor,
) (RequestOrderPaymentCommand, error) {
	cmd := RequestOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setInvoiceAmount(invoiceAmount),
		cmd.setActor(actor),
	); err != nil {
		return RequestOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to invoice.
func (c RequestOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// InvoiceAmount returns the invoiced amount in the minor currency unit.
func (c RequestOrderPaymentCommand) InvoiceAmount() int64 {
	return c.invoiceAmount
}

// Actor returns the acting user.
func (c RequestOrderPaymentCommand) Actor() services.Actor {
	return c.actor
}

func (c *RequestOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestOrderPaymentCommand) setInvoiceAmount(invoiceAmount int64) error {
	if invoiceAmount <= 0 {
		return ErrInvoiceAmountIsInvalid
	}

	c.invoiceAmount = invoiceAmount
	return nil
}

func (c *RequestOrderPaymentCommand) setActor(actor services.Actor) error {
	if err := actor.ID.Validate(); err != nil {
		return err
	}

	switch actor.Role {
	case services.RoleAdmin, services.RoleDispatcher, services.RoleAccounts:
	default:
		return ErrActorRoleIsInvalid
	}

	c.actor = actor
	return nil
}
