package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/guard"
)

var ErrPairTruckTrailerCommandIsNotConstructed = errors.New(
	"PairTruckTrailerCommand must be created via NewPairTruckTrailerCommand constructor",
)

// PairTruckTrailerCommand represents a request to open a new truck-trailer
// pairing ledger entry. Any active entry holding either vehicle is closed in
// the same transaction, so a vehicle is never paired twice at once.
type PairTruckTrailerCommand struct { //nolint:recvcheck //using for validation
	truckID   kernel.UUID
	trailerID kernel.UUID
	actor     services.Actor

	guard guard.ConstructorGuard
}

// NewPairTruckTrailerCommand creates a command to pair a truck with a trailer.
func NewPairTruckTrailerCommand(
	truckID, trailerID kernel.UUID,
	actor services.Actor,
) (PairTruckTrailerCommand, error) {
	cmd := PairTruckTrailerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setTrailerID(trailerID),
		cmd.setActor(actor),
	); err != nil {
		return PairTruckTrailerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PairTruckTrailerCommand) Validate() error {
	return c.guard.Validate(ErrPairTruckTrailerCommandIsNotConstructed)
}

// TruckID returns the identifier of the truck to pair.
func (c PairTruckTrailerCommand) TruckID() kernel.UUID {
	return c.truckID
}

// TrailerID returns the identifier of the trailer to pair.
func (c PairTruckTrailerCommand) TrailerID() kernel.UUID {
	return c.trailerID
}

// Actor returns the acting user.
func (c PairTruckTrailerCommand) Actor() services.Actor {
	return c.actor
}

func (c *PairTruckTrailerCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *PairTruckTrailerCommand) setTrailerID(trailerID kernel.UUID) error {
	if err := trailerID.Validate(); err != nil {
		return err
	}

	c.trailerID = trailerID
	return nil
}

func (c *PairTruckTrailerCommand) setActor(actor services.Actor) error {
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
