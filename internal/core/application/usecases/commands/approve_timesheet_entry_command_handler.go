package commands

import (
	"context"
	"time"

	"hangar/internal/core/domain/model/timesheet"
)

// ApproveTimesheetEntryCommandHandler stamps approval on pending entries.
// Approval metadata and status change go out in the same write.
type ApproveTimesheetEntryCommandHandler struct {
	uowFactory TimesheetUoWFactory
}

// NewApproveTimesheetEntryCommandHandler creates a handler for approvals.
func NewApproveTimesheetEntryCommandHandler(uowFactory TimesheetUoWFactory) ApproveTimesheetEntryCommandHandler {
	return ApproveTimesheetEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle approves the entry. Only pending entries can be approved; already
// approved or rejected ones return an error from the aggregate.
func (h ApproveTimesheetEntryCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveTimesheetEntryCommand,
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

	repo := uow.TimesheetEntryRepository()

	entry, err := repo.GetForShop(ctx, cmd.EntryID(), cmd.ShopID())
	if err != nil {
		return nil, err
	}

	if err = entry.Approve(cmd.ApproverID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
