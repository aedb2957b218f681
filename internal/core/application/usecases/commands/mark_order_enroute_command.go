package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var ErrMarkOrderEnrouteCommandIsNotConstructed = errors.New(
	"MarkOrderEnrouteCommand must be created via NewMarkOrderEnrouteCommand constructor",
)

// MarkOrderEnrouteCommand represents a request to record that the truck has
// departed and the haul is in transit.
type MarkOrderEnrouteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   services.Actor

	guard guard.ConstructorGuard
}

// NewMarkOrderEnrouteCommand creates a command to mark an order as enroute.
func NewMarkOrderEnrouteCommand(orderID kernel.UUID, actor services.Actor) (MarkOrderEnrouteCommand, error) {
	cmd := MarkOrderEnrouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return MarkOrderEnrouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderEnrouteCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderEnrouteCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c MarkOrderEnrouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c MarkOrderEnrouteCommand) Actor() services.Actor {
	return c.actor
}

func (c *MarkOrderEnrouteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderEnrouteCommand) setActor(actor services.Actor) error {
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
