package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrActorRoleIsInvalid = errors.New("actor role must be admin, dispatcher or accounts")
)

// AssignOrderCommand represents a request to commit a driver and vehicles to an
// order. The trailer is optional; the override flag requests assignment despite
// a failing compliance check and is honored for admin actors only.
//
// Example:
//
//	actor := services.Actor{ID: actorID, Role: services.RoleDispatcher}
//	cmd, err := NewAssignOrderCommand(orderID, driverID, truckID, &trailerID, false, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignOrderCommandHandler(uowFactory, policy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverID  kernel.UUID
	truckID   kernel.UUID
	trailerID *kernel.UUID
	override  bool
	actor     services.Actor

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to commit resources to an order.
// Validates all identifiers and the acting user's role.
func NewAssignOrderCommand(
	orderID, driverID, truckID kernel.UUID,
	trailerID *kernel.UUID,
	override bool,
	actor services.Actor,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		override: override,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setTruckID(truckID),
		cmd.setTrailerID(trailerID),
		cmd.setActor(actor),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the driver to commit.
func (c AssignOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TruckID returns the identifier of the truck to commit.
func (c AssignOrderCommand) TruckID() kernel.UUID {
	return c.truckID
}

// TrailerID returns the identifier of the trailer to commit, or nil for a
// trailerless haul.
func (c AssignOrderCommand) TrailerID() *kernel.UUID {
	return c.trailerID
}

// Override reports whether the caller requested a compliance override.
func (c AssignOrderCommand) Override() bool {
	return c.override
}

// Actor returns the acting user.
func (c AssignOrderCommand) Actor() services.Actor {
	return c.actor
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignOrderCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *AssignOrderCommand) setTrailerID(trailerID *kernel.UUID) error {
	if trailerID == nil {
		return nil
	}

	if err := trailerID.Validate(); err != nil {
		return err
	}

	c.trailerID = trailerID
	return nil
}

func (c *AssignOrderCommand) setActor(actor services.Actor) error {
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
