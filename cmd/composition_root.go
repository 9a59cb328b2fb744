package cmd

import (
	"hangar/internal/adapters/out/postgres"
	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/application/usecases/queries"
	"hangar/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordMeterReadingsCommandHandler() commands.RecordMeterReadingsCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordMeterReadingsCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateLogTimesheetEntryCommandHandler() commands.LogTimesheetEntryCommandHandler {
	var f commands.TimesheetUoWFactory = FuncTimesheetUoWFactory(func() commands.TimesheetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogTimesheetEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveTimesheetEntryCommandHandler() commands.ApproveTimesheetEntryCommandHandler {
	var f commands.TimesheetUoWFactory = FuncTimesheetUoWFactory(func() commands.TimesheetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveTimesheetEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderInvoiceQueryHandler() queries.GetWorkOrderInvoiceQueryHandler {
	return queries.NewGetWorkOrderInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLineItemsQueryHandler() queries.GetLineItemsQueryHandler {
	return queries.NewGetLineItemsQueryHandler(c.gormDB)
}

// CreateWorkOrderRepository returns a repository bound outside any transaction.
// Used by background jobs that only read.
func (c *CompositionRoot) CreateWorkOrderRepository() ports.WorkOrderRepository {
	return c.uowFactory.Create().WorkOrderRepository()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncTimesheetUoWFactory func() commands.TimesheetUoW

func (f FuncTimesheetUoWFactory) Create() commands.TimesheetUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}
