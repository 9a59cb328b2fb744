package commands_test

import (
	"context"
	"testing"

	"hangar/internal/core/application/usecases/commands"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/ports"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Add(ctx context.Context, li *lineitem.LineItem) error {
	args := m.Called(ctx, li)
	return args.Error(0)
}

func (m *MockLineItemRepository) GetAllForWorkOrder(
	ctx context.Context, workOrderID kernel.UUID,
) ([]*lineitem.LineItem, error) {
	args := m.Called(ctx, workOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lineitem.LineItem), args.Error(1)
}

type MockBillingUoW struct{ mock.Mock }

func (m *MockBillingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBillingUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockBillingUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

func TestAddLineItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	wo := openWorkOrder(t, shopID)

	cmd, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), wo.ID(), shopID, lineitem.TypeParts, "Oil filter", decimal.NewFromInt(2))
	require.NoError(t, err)
	cmd, err = cmd.WithUnitPrice(decimal.RequireFromString("28.50"))
	require.NoError(t, err)
	cmd = cmd.WithPartNumber("CH48110-1")

	woRepo := new(MockWorkOrderRepository)
	liRepo := new(MockLineItemRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(woRepo).Once(),
		woRepo.On("GetForShop", ctx, wo.ID(), shopID).Return(wo, nil).Once(),
		uow.On("LineItemRepository").Return(liRepo).Once(),
		liRepo.On("Add", ctx, mock.AnythingOfType("*lineitem.LineItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	li, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, lineitem.TypeParts, li.ItemType())
	assert.Equal(t, "CH48110-1", li.PartNumber())
	assert.True(t, li.Total().Equal(decimal.RequireFromString("57")))

	woRepo.AssertExpectations(t)
	liRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddLineItemCommandHandler_Handle_WorkOrderNotFound(t *testing.T) {
	ctx := t.Context()
	shopID := kernel.NewUUID()
	workOrderID := kernel.NewUUID()

	cmd, err := commands.NewAddLineItemCommand(
		kernel.NewUUID(), workOrderID, shopID, lineitem.TypeParts, "Oil filter", decimal.NewFromInt(1))
	require.NoError(t, err)

	woRepo := new(MockWorkOrderRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(woRepo).Once(),
		woRepo.On("GetForShop", ctx, workOrderID, shopID).
			Return(nil, errs.NewObjectNotFoundError("workOrderID", workOrderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddLineItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertNotCalled(t, "LineItemRepository")
}

func TestAddLineItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockBillingUoWFactory)
	h := commands.NewAddLineItemCommandHandler(factory)
	_, err := h.Handle(ctx, commands.AddLineItemCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
