package commands_test

import (
	"testing"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, "ACME-2024-18", "Mombasa Port, Gate 9", "Kampala ICD")

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "ACME-2024-18", cmd.CustomerRef())
	assert.Equal(t, "Mombasa Port, Gate 9", cmd.PickupAddress())
	assert.Equal(t, "Kampala ICD", cmd.DestinationAddress())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_MissingFields(t *testing.T) {
	orderID := kernel.NewUUID()

	_, err := commands.NewCreateOrderCommand(orderID, "", "Mombasa Port", "Kampala ICD")
	require.ErrorIs(t, err, commands.ErrCustomerRefIsRequired)

	_, err = commands.NewCreateOrderCommand(orderID, "ACME-2024-18", "", "Kampala ICD")
	require.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)

	_, err = commands.NewCreateOrderCommand(orderID, "ACME-2024-18", "Mombasa Port", "")
	require.ErrorIs(t, err, commands.ErrDestinationAddressIsRequired)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "ACME-2024-18", "Mombasa Port", "Kampala ICD")
	require.Error(t, err)
}

func TestCreateOrderCommand_ValidateZeroValue(t *testing.T) {
	cmd := commands.CreateOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
