package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var (
	ErrMarkOrderLoadedCommandIsNotConstructed = errors.New(
		"MarkOrderLoadedCommand must be created via NewMarkOrderLoadedCommand constructor",
	)
	ErrOdometerIsInvalid = errors.New("odometer reading must not be negative")
)

// MarkOrderLoadedCommand represents a request to record that cargo has been
// loaded onto the committed truck. The start odometer reading is optional.
type MarkOrderLoadedCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	startOdometer *int
	actor         services.Actor

	guard guard.ConstructorGuard
}

// NewMarkOrderLoadedCommand creates a command to mark an order as loaded.
func NewMarkOrderLoadedCommand(
	orderID kernel.UUID,
	startOdometer *int,
	actor services.Actor,
) (MarkOrderLoadedCommand, error) {
	cmd := MarkOrderLoadedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStartOdometer(startOdometer),
		cmd.setActor(actor),
	); err != nil {
		return MarkOrderLoadedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderLoadedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderLoadedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c MarkOrderLoadedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StartOdometer returns the odometer reading at loading, or nil when not recorded.
func (c MarkOrderLoadedCommand) StartOdometer() *int {
	return c.startOdometer
}

// Actor returns the acting user.
func (c MarkOrderLoadedCommand) Actor() services.Actor {
	return c.actor
}

func (c *MarkOrderLoadedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderLoadedCommand) setStartOdometer(startOdometer *int) error {
	if startOdometer != nil && *startOdometer < 0 {
		return ErrOdometerIsInvalid
	}

	c.startOdometer = startOdometer
	return nil
}

func (c *MarkOrderLoadedCommand) setActor(actor services.Actor) error {
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
