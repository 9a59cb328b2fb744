package queries_test

import (
	"context"
	"testing"
	"time"

	"hangar/internal/adapters/out/postgres/lineitemrepo"
	"hangar/internal/adapters/out/postgres/shoprepo"
	"hangar/internal/adapters/out/postgres/timesheetrepo"
	"hangar/internal/adapters/out/postgres/workorderrepo"
	"hangar/internal/core/application/usecases/queries"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/domain/model/shop"
	"hangar/internal/core/domain/model/timesheet"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetWorkOrderInvoiceQueryHandlerTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	handler       queries.GetWorkOrderInvoiceQueryHandler
	workOrderRepo *workorderrepo.GormWorkOrderRepository
	timesheetRepo *timesheetrepo.GormTimesheetEntryRepository
	lineItemRepo  *lineitemrepo.GormLineItemRepository
	shopRepo      *shoprepo.GormShopRepository

	testShop *shop.Shop
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&timesheetrepo.TimesheetEntryDTO{},
		&lineitemrepo.LineItemDTO{},
		&shoprepo.ShopDTO{},
	))

	tracker := &mockAggregateTracker{}
	suite.handler = queries.NewGetWorkOrderInvoiceQueryHandler(db)
	suite.workOrderRepo = workorderrepo.NewGormWorkOrderRepository(db, tracker)
	suite.timesheetRepo = timesheetrepo.NewGormTimesheetEntryRepository(db, tracker)
	suite.lineItemRepo = lineitemrepo.NewGormLineItemRepository(db, tracker)
	suite.shopRepo = shoprepo.NewGormShopRepository(db, tracker)
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE work_orders, timesheet_entries, line_items, shops").Error)

	var err error
	suite.testShop, err = shop.NewShop(kernel.NewUUID(), "Skyline Aero", decimal.NewFromInt(85))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shopRepo.Add(ctx, suite.testShop))
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) createWorkOrder() *workorder.WorkOrder {
	number, err := workorder.NewNumber(time.Now().UTC(), 1)
	suite.Require().NoError(err)
	wo, err := workorder.NewWorkOrder(
		kernel.NewUUID(), suite.testShop.ID(), kernel.NewUUID(), number, "Annual inspection")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.workOrderRepo.Add(context.Background(), wo))
	return wo
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) addApprovedEntry(
	wo *workorder.WorkOrder, hours string, rate *string,
) {
	ctx := context.Background()
	workDate := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)

	entry, err := timesheet.NewEntry(
		kernel.NewUUID(), suite.testShop.ID(), kernel.NewUUID(),
		workDate, decimal.RequireFromString(hours))
	suite.Require().NoError(err)
	suite.Require().NoError(entry.AttachWorkOrder(wo.ID()))
	if rate != nil {
		suite.Require().NoError(entry.SetRate(decimal.RequireFromString(*rate)))
	}
	suite.Require().NoError(entry.Approve(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.timesheetRepo.Add(ctx, entry))
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) addPartsItem(
	wo *workorder.WorkOrder, qty, unitPrice string,
) {
	ctx := context.Background()
	item, err := lineitem.NewLineItem(
		kernel.NewUUID(), wo.ID(), lineitem.TypeParts, "Oil filter",
		decimal.RequireFromString(qty))
	suite.Require().NoError(err)
	suite.Require().NoError(item.SetUnitPrice(decimal.RequireFromString(unitPrice)))
	suite.Require().NoError(suite.lineItemRepo.Add(ctx, item))
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TestHandle_AggregatesLaborAndParts() {
	wo := suite.createWorkOrder()

	rate := "95"
	suite.addApprovedEntry(wo, "3", &rate)
	suite.addApprovedEntry(wo, "2", nil) // falls back to the shop rate of 85
	suite.addPartsItem(wo, "2", "28.50")

	query, err := queries.NewGetWorkOrderInvoiceQuery(wo.ID(), suite.testShop.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.Labor.Equal(decimal.RequireFromString("455")), "labor was %s", result.Labor)
	suite.True(result.LaborHours.Equal(decimal.RequireFromString("5")))
	suite.True(result.Parts.Equal(decimal.RequireFromString("57")), "parts was %s", result.Parts)
	suite.True(result.Subcontract.IsZero())
	suite.True(result.Total.Equal(decimal.RequireFromString("512")), "total was %s", result.Total)
	suite.False(result.IsEstimated)
	suite.Equal(wo.Number().String(), result.WorkOrderNumber)
	suite.Equal(wo.Number().InvoiceNumber(), result.InvoiceNumber)
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TestHandle_NoRecords_FallsBackToEstimates() {
	wo := suite.createWorkOrder()
	suite.Require().NoError(wo.Estimate(decimal.NewFromInt(1200), decimal.NewFromInt(450)))
	suite.Require().NoError(suite.workOrderRepo.Update(context.Background(), wo))

	query, err := queries.NewGetWorkOrderInvoiceQuery(wo.ID(), suite.testShop.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.Labor.IsZero())
	suite.True(result.Parts.IsZero())
	suite.True(result.Total.Equal(decimal.NewFromInt(1650)), "total was %s", result.Total)
	suite.True(result.IsEstimated)

	// The fallback is display-only; the stored row keeps its real values.
	loaded, err := suite.workOrderRepo.GetForShop(context.Background(), wo.ID(), suite.testShop.ID())
	suite.Require().NoError(err)
	suite.True(loaded.EstimatedLabor().Equal(decimal.NewFromInt(1200)))
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TestHandle_IgnoresPendingAndNonBillable() {
	ctx := context.Background()
	wo := suite.createWorkOrder()
	workDate := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)

	pending, err := timesheet.NewEntry(
		kernel.NewUUID(), suite.testShop.ID(), kernel.NewUUID(), workDate, decimal.NewFromInt(4))
	suite.Require().NoError(err)
	suite.Require().NoError(pending.AttachWorkOrder(wo.ID()))
	suite.Require().NoError(suite.timesheetRepo.Add(ctx, pending))

	nonBillable, err := timesheet.NewEntry(
		kernel.NewUUID(), suite.testShop.ID(), kernel.NewUUID(), workDate, decimal.NewFromInt(2))
	suite.Require().NoError(err)
	suite.Require().NoError(nonBillable.AttachWorkOrder(wo.ID()))
	nonBillable.SetBillable(false)
	suite.Require().NoError(nonBillable.Approve(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.timesheetRepo.Add(ctx, nonBillable))

	query, err := queries.NewGetWorkOrderInvoiceQuery(wo.ID(), suite.testShop.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.Labor.IsZero())
	suite.True(result.LaborHours.IsZero())
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TestHandle_InvoiceDateIsActualEndWhenStamped() {
	wo := suite.createWorkOrder()
	t0 := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(wo.ChangeStatus(workorder.Open, t0))
	suite.Require().NoError(wo.ChangeStatus(workorder.InProgress, t0))
	suite.Require().NoError(wo.ChangeStatus(workorder.Completed, t0.Add(48*time.Hour)))
	suite.Require().NoError(suite.workOrderRepo.Update(context.Background(), wo))

	query, err := queries.NewGetWorkOrderInvoiceQuery(wo.ID(), suite.testShop.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.InvoiceDate.Equal(t0.Add(48 * time.Hour)))
	suite.Equal("completed", result.Status)
}

func (suite *GetWorkOrderInvoiceQueryHandlerTestSuite) TestHandle_OtherShop_ReturnsNotFound() {
	wo := suite.createWorkOrder()

	query, err := queries.NewGetWorkOrderInvoiceQuery(wo.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetWorkOrderInvoiceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetWorkOrderInvoiceQueryHandlerTestSuite))
}
