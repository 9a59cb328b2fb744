package commands

import (
	"context"

	"hangar/internal/core/domain/model/timesheet"
)

// LogTimesheetEntryCommandHandler records worked hours. When the entry is
// linked to a work order the link is verified against the caller's shop
// before the entry is persisted.
type LogTimesheetEntryCommandHandler struct {
	uowFactory TimesheetUoWFactory
}

// NewLogTimesheetEntryCommandHandler creates a handler for timesheet logging.
func NewLogTimesheetEntryCommandHandler(uowFactory TimesheetUoWFactory) LogTimesheetEntryCommandHandler {
	return LogTimesheetEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new pending timesheet entry.
func (h LogTimesheetEntryCommandHandler) Handle(
	ctx context.Context,
	cmd LogTimesheetEntryCommand,
) (*timesheet.Entry, error) {
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

	if cmd.WorkOrderID() != nil {
		if _, err := uow.WorkOrderRepository().GetForShop(ctx, *cmd.WorkOrderID(), cmd.ShopID()); err != nil {
			return nil, err
		}
	}

	entry, err := timesheet.NewEntry(cmd.EntryID(), cmd.ShopID(), cmd.UserID(), cmd.WorkDate(), cmd.Hours())
	if err != nil {
		return nil, err
	}

	if cmd.WorkOrderID() != nil {
		if err = entry.AttachWorkOrder(*cmd.WorkOrderID()); err != nil {
			return nil, err
		}
	}
	if cmd.Rate() != nil {
		if err = entry.SetRate(*cmd.Rate()); err != nil {
			return nil, err
		}
	}
	entry.SetBillable(cmd.Billable())
	entry.SetDescription(cmd.Description())

	if err = uow.TimesheetEntryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
