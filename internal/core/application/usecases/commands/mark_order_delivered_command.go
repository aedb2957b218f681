package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var (
	ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
		"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
	)
	ErrPodRefIsRequired = errors.New("proof of delivery reference is required")
)

// MarkOrderDeliveredCommand represents a request to record that cargo reached
// its destination. A proof-of-delivery reference is mandatory; the end
// odometer reading is optional.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	podRef      string
	endOdometer *int
	actor       services.Actor

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to mark an order as delivered.
func NewMarkOrderDeliveredCommand(
	orderID kernel.UUID,
	podRef string,
	endOdometer *int,
	actor services.Actor,
) (MarkOrderDeliveredCommand, error) {
	cmd := MarkOrderDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPodRef(podRef),
		cmd.setEndOdometer(endOdometer),
		cmd.setActor(actor),
	); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PodRef returns the proof-of-delivery document reference.
func (c MarkOrderDeliveredCommand) PodRef() string {
	return c.podRef
}

// EndOdometer returns the odometer reading at delivery, or nil when not recorded.
func (c MarkOrderDeliveredCommand) EndOdometer() *int {
	return c.endOdometer
}

// Actor returns the acting user.
func (c MarkOrderDeliveredCommand) Actor() services.Actor {
	return c.actor
}

func (c *MarkOrderDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderDeliveredCommand) setPodRef(podRef string) error {
	if podRef == "" {
		return ErrPodRefIsRequired
	}

	c.podRef = podRef
	return nil
}

func (c *MarkOrderDeliveredCommand) setEndOdometer(endOdometer *int) error {
	if endOdometer != nil && *endOdometer < 0 {
		return ErrOdometerIsInvalid
	}

	c.endOdometer = endOdometer
	return nil
}

func (c *MarkOrderDeliveredCommand) setActor(actor services.Actor) error {
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
