package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerRefIsRequired        = errors.New("customer reference is required")
	ErrPickupAddressIsRequired      = errors.New("pickup address is required")
	ErrDestinationAddressIsRequired = errors.New("destination address is required")
)

// CreateOrderCommand represents a request to register a new shipment order.
// Encapsulates the customer reference and the pickup and destination addresses.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ACME-2024-18", "Mombasa Port, Gate 9", "Kampala ICD")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerRef        string
	pickupAddress      string
	destinationAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates that the order ID is valid and all reference fields are present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerRef, pickupAddress, destinationAddress string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerRef(customerRef),
		orderCommand.setAddresses(pickupAddress, destinationAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the external customer reference.
func (c CreateOrderCommand) CustomerRef() string {
	return c.customerRef
}

// PickupAddress returns the cargo pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DestinationAddress returns the cargo destination address.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}

	c.customerRef = customerRef
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup, destination string) error {
	if pickup == "" {
		return ErrPickupAddressIsRequired
	}
	if destination == "" {
		return ErrDestinationAddressIsRequired
	}

	c.pickupAddress = pickup
	c.destinationAddress = destination
	return nil
}
