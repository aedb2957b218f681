package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents a request to archive a paid order.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close a paid order.
func NewCloseOrderCommand(orderID kernel.UUID, actor services.Actor) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to close.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c CloseOrderCommand) Actor() services.Actor {
	return c.actor
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseOrderCommand) setActor(actor services.Actor) error {
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
