package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var ErrUnpairTruckTrailerCommandIsNotConstructed = errors.New(
	"UnpairTruckTrailerCommand must be created via NewUnpairTruckTrailerCommand constructor",
)

// UnpairTruckTrailerCommand represents a request to close a pairing ledger
// entry by its identifier.
type UnpairTruckTrailerCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	actor        services.Actor

	guard guard.ConstructorGuard
}

// NewUnpairTruckTrailerCommand creates a command to close a pairing entry.
func NewUnpairTruckTrailerCommand(
	assignmentID kernel.UUID,
	actor services.Actor,
) (UnpairTruckTrailerCommand, error) {
	cmd := UnpairTruckTrailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setActor(actor),
	); err != nil {
		return UnpairTruckTrailerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpairTruckTrailerCommand) Validate() error {
	return c.guard.Validate(ErrUnpairTruckTrailerCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the ledger entry to close.
func (c UnpairTruckTrailerCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Actor returns the acting user.
func (c UnpairTruckTrailerCommand) Actor() services.Actor {
	return c.actor
}

func (c *UnpairTruckTrailerCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UnpairTruckTrailerCommand) setActor(actor services.Actor) error {
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
