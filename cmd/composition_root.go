package cmd

import (
	"haulage/internal/adapters/out/postgres"
	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.Policy
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewPolicy(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateMarkOrderLoadedCommandHandler() commands.MarkOrderLoadedCommandHandler {
	return commands.NewMarkOrderLoadedCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkOrderEnrouteCommandHandler() commands.MarkOrderEnrouteCommandHandler {
	return commands.NewMarkOrderEnrouteCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRequestOrderPaymentCommandHandler() commands.RequestOrderPaymentCommandHandler {
	return commands.NewRequestOrderPaymentCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateConfirmOrderPaymentCommandHandler() commands.ConfirmOrderPaymentCommandHandler {
	return commands.NewConfirmOrderPaymentCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreatePairTruckTrailerCommandHandler() commands.PairTruckTrailerCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPairTruckTrailerCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUnpairTruckTrailerCommandHandler() commands.UnpairTruckTrailerCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnpairTruckTrailerCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveAssignmentsQueryHandler() queries.GetActiveAssignmentsQueryHandler {
	return queries.NewGetActiveAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentHistoryQueryHandler() queries.GetAssignmentHistoryQueryHandler {
	return queries.NewGetAssignmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiringDocumentsQueryHandler() queries.GetExpiringDocumentsQueryHandler {
	return queries.NewGetExpiringDocumentsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}
