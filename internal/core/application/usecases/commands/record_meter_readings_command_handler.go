package commands

import (
	"context"

	"hangar/internal/core/domain/model/workorder"
)

// RecordMeterReadingsCommandHandler updates meter readings on a work order.
// Readings absent from the command keep their stored values.
type RecordMeterReadingsCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRecordMeterReadingsCommandHandler creates a handler for meter updates.
func NewRecordMeterReadingsCommandHandler(uowFactory WorkOrderUoWFactory) RecordMeterReadingsCommandHandler {
	return RecordMeterReadingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle merges the supplied readings into the work order. Out readings are
// rejected when they fall below the corresponding in reading.
func (h RecordMeterReadingsCommandHandler) Handle(
	ctx context.Context,
	cmd RecordMeterReadingsCommand,
) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	wo, err := repo.GetForShop(ctx, cmd.WorkOrderID(), cmd.ShopID())
	if err != nil {
		return nil, err
	}

	hobbsIn := cmd.HobbsIn()
	if hobbsIn == nil {
		hobbsIn = wo.HobbsIn()
	}
	tachIn := cmd.TachIn()
	if tachIn == nil {
		tachIn = wo.TachIn()
	}
	wo.RecordMetersIn(hobbsIn, tachIn)

	if err = wo.RecordMetersOut(cmd.HobbsOut(), cmd.TachOut()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}
