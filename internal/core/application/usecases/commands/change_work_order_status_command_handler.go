package commands

import (
	"context"
	"time"

	"hangar/internal/core/domain/model/workorder"
)

// ChangeWorkOrderStatusCommandHandler executes lifecycle transitions.
// The work order row is locked for the duration of the transaction, so two
// concurrent transitions against the same order serialize and the second is
// validated against the committed status rather than a stale read.
//
// Failure modes surface to the caller unchanged:
//   - errs.ErrObjectNotFound when the id is unknown or outside the shop
//   - workorder.ErrInvalidStatusTransition when the table rejects the move
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the transition against the table, stamps execution
// timestamps, and persists status plus stamps in a single write.
// Returns the updated work order on success.
func (h ChangeWorkOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeWorkOrderStatusCommand,
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

	if err = wo.ChangeStatus(cmd.TargetStatus(), time.Now().UTC()); err != nil {
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
