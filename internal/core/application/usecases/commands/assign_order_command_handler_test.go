package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/domain/model/driver"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/domain/model/vehicle"
	"haulage/internal/core/domain/services"
	"haulage/internal/core/ports"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignOrderRepository struct{ mock.Mock }

func (m *MockAssignOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) FindCommittedHolder(
	ctx context.Context,
	kind ports.ResourceKind,
	resourceID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, kind, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAssignDriverRepository struct{ mock.Mock }

func (m *MockAssignDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockAssignDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockAssignVehicleRepository struct{ mock.Mock }

func (m *MockAssignVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockAssignVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockAssignVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockAssignVehicleRepository) GetByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockAssignUoW struct{ mock.Mock }

func (m *MockAssignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockAssignUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

func newCreatedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "ACME-2024-18", "Mombasa Port, Gate 9", "Kampala ICD", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func newCompliantDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()

	license, err := kernel.PresentDocument("docs/license.pdf")
	require.NoError(t, err)
	passport, err := kernel.PresentDocument("docs/passport.jpg")
	require.NoError(t, err)
	conduct, err := kernel.PresentDocument("docs/conduct.pdf")
	require.NoError(t, err)
	portPass, err := kernel.PresentDocument("docs/port_pass.pdf")
	require.NoError(t, err)

	d, err := driver.NewDriver(id, "Juma Otieno", driver.RoleDriver, driver.Documents{
		LicenseFile:        license,
		PassportPhoto:      passport,
		ConductCertificate: conduct,
		PortPass:           portPass,
	}, kernel.ExpiryOn(time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)
	return d
}

func newCompliantVehicle(t *testing.T, id kernel.UUID, plate string, kind vehicle.Kind) *vehicle.Vehicle {
	t.Helper()

	future := time.Now().AddDate(1, 0, 0)
	v, err := vehicle.NewVehicle(id, plate, kind, vehicle.Expiries{
		Insurance:      kernel.ExpiryOn(future),
		Inspection:     kernel.ExpiryOn(future),
		RegionalPermit: kernel.ExpiryOn(future),
	}, vehicle.Documents{})
	require.NoError(t, err)
	return v
}

type assignFixture struct {
	orderRepo   *MockAssignOrderRepository
	driverRepo  *MockAssignDriverRepository
	vehicleRepo *MockAssignVehicleRepository
	uow         *MockAssignUoW
	factory     *MockAssignUoWFactory
}

func newAssignFixture(ctx context.Context) *assignFixture {
	f := &assignFixture{
		orderRepo:   new(MockAssignOrderRepository),
		driverRepo:  new(MockAssignDriverRepository),
		vehicleRepo: new(MockAssignVehicleRepository),
		uow:         new(MockAssignUoW),
		factory:     new(MockAssignUoWFactory),
	}

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil)
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("DriverRepository").Return(f.driverRepo)
	f.uow.On("VehicleRepository").Return(f.vehicleRepo)
	return f
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()
	trailerID := kernel.NewUUID()

	testDriver := newCompliantDriver(t, driverID)
	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)
	testTrailer := newCompliantVehicle(t, trailerID, "ZF 1122", vehicle.KindTrailer)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, trailerID).Return(testTrailer, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(testDriver, nil).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "ZF 1122").Return(testTrailer, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceTruck, truckID).Return(nil, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceTrailer, trailerID).Return(nil, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceDriver, driverID).Return(nil, nil).Once()
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewAssignOrderCommand(
		testOrder.ID(), driverID, truckID, &trailerID, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	require.NotNil(t, testOrder.Driver())
	assert.True(t, testOrder.Driver().IsEqual(driverID))
	assert.False(t, testOrder.Overridden())
	f.orderRepo.AssertExpectations(t)
	f.vehicleRepo.AssertExpectations(t)
	f.driverRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)

	// Resource rows must be read under lock; the plain reads bypass the
	// serialization point.
	f.vehicleRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.driverRepo.AssertCalled(t, "GetForUpdate", ctx, driverID)
}

func TestAssignOrderCommandHandler_Handle_DriverNotFound_DeniedWithReason(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)
	notFound := errs.NewObjectNotFoundError("driver", driverID.String())

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(nil, notFound).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(nil, notFound).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), driverID, truckID, nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrComplianceDenied)

	var denied *errs.ComplianceDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"Driver not found: " + driverID.String()}, denied.Reasons)
	assert.Equal(t, order.Created, testOrder.Status())
}

func TestAssignOrderCommandHandler_Handle_ComplianceDenied(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	// Driver without a port pass fails the gate.
	license, _ := kernel.PresentDocument("docs/license.pdf")
	passport, _ := kernel.PresentDocument("docs/passport.jpg")
	conduct, _ := kernel.PresentDocument("docs/conduct.pdf")
	testDriver, err := driver.NewDriver(driverID, "Juma Otieno", driver.RoleDriver, driver.Documents{
		LicenseFile:        license,
		PassportPhoto:      passport,
		ConductCertificate: conduct,
		PortPass:           kernel.MissingDocument(),
	}, kernel.ExpiryOn(time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(testDriver, nil).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), driverID, truckID, nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrComplianceDenied)

	var denied *errs.ComplianceDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, []string{"Missing: port pass"}, denied.Reasons)
	assert.Equal(t, order.Created, testOrder.Status())
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_AdminOverride(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	license, _ := kernel.PresentDocument("docs/license.pdf")
	passport, _ := kernel.PresentDocument("docs/passport.jpg")
	conduct, _ := kernel.PresentDocument("docs/conduct.pdf")
	testDriver, err := driver.NewDriver(driverID, "Juma Otieno", driver.RoleDriver, driver.Documents{
		LicenseFile:        license,
		PassportPhoto:      passport,
		ConductCertificate: conduct,
		PortPass:           kernel.MissingDocument(),
	}, kernel.ExpiryOn(time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(testDriver, nil).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceTruck, truckID).Return(nil, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceDriver, driverID).Return(nil, nil).Once()
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	admin := services.Actor{ID: kernel.NewUUID(), Role: services.RoleAdmin}
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), driverID, truckID, nil, true, admin)
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	assert.True(t, testOrder.Overridden())
	assert.Equal(t, []string{"Missing: port pass"}, testOrder.ComplianceNotes())
}

func TestAssignOrderCommandHandler_Handle_OverrideDeniedForDispatcher(t *testing.T) {
	ctx := t.Context()

	f := newAssignFixture(ctx)
	cmd, err := commands.NewAssignOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, true, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActionNotAllowed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_RoleDenied(t *testing.T) {
	ctx := t.Context()

	f := newAssignFixture(ctx)
	accounts := services.Actor{ID: kernel.NewUUID(), Role: services.RoleAccounts}
	cmd, err := commands.NewAssignOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, false, accounts)
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrActionNotAllowed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestAssignOrderCommandHandler_Handle_TruckConflict(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	holder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	testDriver := newCompliantDriver(t, driverID)
	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(testDriver, nil).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceTruck, truckID).Return(holder, nil).Once()

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), driverID, truckID, nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	assert.Equal(t, order.Created, testOrder.Status())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	cmd, err := commands.NewAssignOrderCommand(
		orderID, kernel.NewUUID(), kernel.NewUUID(), nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignOrderCommandHandler_Handle_TruckIDRefersToTrailer(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	truckID := kernel.NewUUID()
	notATruck := newCompliantVehicle(t, truckID, "ZF 1122", vehicle.KindTrailer)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(notATruck, nil).Once()

	cmd, err := commands.NewAssignOrderCommand(
		testOrder.ID(), kernel.NewUUID(), truckID, nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAssignOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testOrder := newCreatedOrder(t)
	driverID := kernel.NewUUID()
	truckID := kernel.NewUUID()

	testDriver := newCompliantDriver(t, driverID)
	testTruck := newCompliantVehicle(t, truckID, "KDA 123A", vehicle.KindTruck)

	f := newAssignFixture(ctx)
	f.orderRepo.On("GetForUpdate", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	f.vehicleRepo.On("GetForUpdate", ctx, truckID).Return(testTruck, nil).Once()
	f.driverRepo.On("GetForUpdate", ctx, driverID).Return(testDriver, nil).Once()
	f.driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	f.vehicleRepo.On("GetByPlate", ctx, "KDA 123A").Return(testTruck, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceTruck, truckID).Return(nil, nil).Once()
	f.orderRepo.On("FindCommittedHolder", ctx, ports.ResourceDriver, driverID).Return(nil, nil).Once()
	f.orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), driverID, truckID, nil, false, dispatcherActor())
	require.NoError(t, err)

	handler := commands.NewAssignOrderCommandHandler(f.factory, services.NewPolicy())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
