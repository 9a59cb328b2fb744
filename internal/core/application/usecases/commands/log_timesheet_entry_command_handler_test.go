package commands_test

import (
	"context"
	"testing"
	"time"

	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/timesheet"
	"hangar/internal/core/ports"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTimesheetEntryRepository struct{ mock.Mock }

func (m *MockTimesheetEntryRepository) Add(ctx context.Context, e *timesheet.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTimesheetEntryRepository) Update(ctx context.Context, e *timesheet.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTimesheetEntryRepository) GetForShop(
	ctx context.Context, id, shopID kernel.UUID,
) (*timesheet.Entry, error) {
	args := m.Called(ctx, id, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timesheet.Entry), args.Error(1)
}

func (m *MockTimesheetEntryRepository) GetBillableForWorkOrder(
	ctx context.Context, workOrderID kernel.UUID,
) ([]*timesheet.Entry, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*timesheet.Entry), args.Error(1)
}

type MockTimesheetUoW struct{ mock.Mock }

func (m *MockTimesheetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTimesheetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTimesheetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTimesheetUoW) TimesheetEntryRepository() ports.TimesheetEntryRepository {
	args := m.Called()
	return args.Get(0).(ports.TimesheetEntryRepository)
}

func (m *MockTimesheetUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockTimesheetUoWFactory struct{ mock.Mock }

func (m *MockTimesheetUoWFactory) Create() commands.TimesheetUoW {
	args := m.Called()
	return args.Get(0).(commands.TimesheetUoW)
}

func TestLogTimesheetEntryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	workDate := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewLogTimesheetEntryCommand(
		kernel.NewUUID(), shopID, kernel.NewUUID(), workDate, decimal.NewFromInt(3))
	require.NoError(t, err)
	cmd = cmd.WithDescription("Annual inspection airframe")

	tsRepo := new(MockTimesheetEntryRepository)
	uow := new(MockTimesheetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TimesheetEntryRepository").Return(tsRepo).Once(),
		tsRepo.On("Add", ctx, mock.AnythingOfType("*timesheet.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTimesheetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTimesheetEntryCommandHandler(factory)
	entry, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPending, entry.Status())
	assert.True(t, entry.IsBillable())

	tsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLogTimesheetEntryCommandHandler_Handle_VerifiesLinkedWorkOrder(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	wo := openWorkOrder(t, shopID)
	workDate := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewLogTimesheetEntryCommand(
		kernel.NewUUID(), shopID, kernel.NewUUID(), workDate, decimal.NewFromInt(3))
	require.NoError(t, err)
	cmd, err = cmd.WithWorkOrder(wo.ID())
	require.NoError(t, err)

	woRepo := new(MockWorkOrderRepository)
	tsRepo := new(MockTimesheetEntryRepository)
	uow := new(MockTimesheetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(woRepo).Once(),
		woRepo.On("GetForShop", ctx, wo.ID(), shopID).Return(wo, nil).Once(),
		uow.On("TimesheetEntryRepository").Return(tsRepo).Once(),
		tsRepo.On("Add", ctx, mock.AnythingOfType("*timesheet.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTimesheetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTimesheetEntryCommandHandler(factory)
	entry, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, entry.WorkOrderID())
	assert.Equal(t, wo.ID(), *entry.WorkOrderID())

	woRepo.AssertExpectations(t)
	tsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogTimesheetEntryCommandHandler_Handle_LinkedWorkOrderOutsideShop(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	workOrderID := kernel.NewUUID()
	workDate := time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewLogTimesheetEntryCommand(
		kernel.NewUUID(), shopID, kernel.NewUUID(), workDate, decimal.NewFromInt(3))
	require.NoError(t, err)
	cmd, err = cmd.WithWorkOrder(workOrderID)
	require.NoError(t, err)

	woRepo := new(MockWorkOrderRepository)
	uow := new(MockTimesheetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(woRepo).Once(),
		woRepo.On("GetForShop", ctx, workOrderID, shopID).
			Return(nil, errs.NewObjectNotFoundError("workOrderID", workOrderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTimesheetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTimesheetEntryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "TimesheetEntryRepository")
}
