package commands

import (
	"context"
	"errors"
	"time"

	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/core/ports"
)

// numberAllocationAttempts bounds retries when a concurrent create grabs the
// same monthly sequence number.
const numberAllocationAttempts = 3

// CreateWorkOrderCommandHandler opens a new draft work order, allocating the
// next work order number for the shop's current month.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the work order. The number is derived from how many work
// orders the shop opened since the start of the current month; on a
// duplicate number collision the count is re-read and the insert retried.
func (h CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var lastErr error
	for attempt := 0; attempt < numberAllocationAttempts; attempt++ {
		wo, err := h.createOnce(ctx, cmd, now, startOfMonth)
		if err == nil {
			return wo, nil
		}
		if !errors.Is(err, ports.ErrDuplicateWorkOrderNumber) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (h CreateWorkOrderCommandHandler) createOnce(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
	now, startOfMonth time.Time,
) (*workorder.WorkOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	count, err := repo.CountCreatedSince(ctx, cmd.ShopID(), startOfMonth)
	if err != nil {
		return nil, err
	}

	number, err := workorder.NewNumber(now, int(count)+1)
	if err != nil {
		return nil, err
	}

	wo, err := workorder.NewWorkOrder(cmd.WorkOrderID(), cmd.ShopID(), cmd.AircraftID(), number, cmd.Title())
	if err != nil {
		return nil, err
	}

	if cmd.CustomerID() != nil {
		if err = wo.AssignCustomer(*cmd.CustomerID()); err != nil {
			return nil, err
		}
	}
	wo.Plan(cmd.ScheduledStart(), cmd.ScheduledEnd())
	wo.RecordMetersIn(cmd.HobbsIn(), cmd.TachIn())
	if err = wo.Estimate(cmd.EstimatedLabor(), cmd.EstimatedParts()); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}
