package commands_test

import (
	"testing"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatcherActor() services.Actor {
	return services.Actor{ID: kernel.NewUUID(), Role: services.RoleDispatcher}
}

func TestNewAssignOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()
	trailerID := kernel.NewUUID()

	cmd, err := commands.NewAssignOrderCommand(orderID, driverID, truckID, &trailerID, true, dispatcherActor())

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.Equal(t, truckID, cmd.TruckID())
	require.NotNil(t, cmd.TrailerID())
	assert.Equal(t, trailerID, *cmd.TrailerID())
	assert.True(t, cmd.Override())
	require.NoError(t, cmd.Validate())
}

func TestNewAssignOrderCommand_NoTrailer(t *testing.T) {
	cmd, err := commands.NewAssignOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, false, dispatcherActor())

	require.NoError(t, err)
	assert.Nil(t, cmd.TrailerID())
	assert.False(t, cmd.Override())
}

func TestNewAssignOrderCommand_InvalidIDs(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := commands.NewAssignOrderCommand(kernel.UUID{}, valid, valid, nil, false, dispatcherActor())
	require.Error(t, err)

	_, err = commands.NewAssignOrderCommand(valid, kernel.UUID{}, valid, nil, false, dispatcherActor())
	require.Error(t, err)

	_, err = commands.NewAssignOrderCommand(valid, valid, kernel.UUID{}, nil, false, dispatcherActor())
	require.Error(t, err)

	empty := kernel.UUID{}
	_, err = commands.NewAssignOrderCommand(valid, valid, valid, &empty, false, dispatcherActor())
	require.Error(t, err)
}

func TestNewAssignOrderCommand_InvalidActor(t *testing.T) {
	valid := kernel.NewUUID()

	_, err := commands.NewAssignOrderCommand(valid, valid, valid, nil, false,
		services.Actor{ID: kernel.UUID{}, Role: services.RoleDispatcher})
	require.Error(t, err)

	_, err = commands.NewAssignOrderCommand(valid, valid, valid, nil, false,
		services.Actor{ID: kernel.NewUUID(), Role: "driver"})
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrActorRoleIsInvalid)
}

func TestAssignOrderCommand_ValidateZeroValue(t *testing.T) {
	cmd := commands.AssignOrderCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
}
