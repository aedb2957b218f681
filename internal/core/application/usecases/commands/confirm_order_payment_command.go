package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var ErrConfirmOrderPaymentCommandIsNotConstructed = errors.New(
	"ConfirmOrderPaymentCommand must be created via NewConfirmOrderPaymentCommand constructor",
)

// ConfirmOrderPaymentCommand represents a request to record that the invoiced
// amount has been settled.
type ConfirmOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor

	guard guard.ConstructorGuard
}

// NewConfirmOrderPaymentCommand creates a command to mark an order as paid.
func NewConfirmOrderPaymentCommand(orderID kernel.UUID, actor services.Actor) (ConfirmOrderPaymentCommand, error) {
	cmd := ConfirmOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmOrderPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark as paid.
func (c ConfirmOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c ConfirmOrderPaymentCommand) Actor() services.Actor {
	return c.actor
}

func (c *ConfirmOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderPaymentCommand) setActor(actor services.Actor) error {
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
