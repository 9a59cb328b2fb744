package commands

import (
	"context"

	"hangar/internal/core/domain/model/lineitem"
)

// AddLineItemCommandHandler attaches billing lines to a work order.
type AddLineItemCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewAddLineItemCommandHandler creates a handler for adding line items.
func NewAddLineItemCommandHandler(uowFactory BillingUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the work order belongs to the caller's shop, then persists
// the line item.
func (h AddLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddLineItemCommand,
) (*lineitem.LineItem, error) {
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

	if _, err := uow.WorkOrderRepository().GetForShop(ctx, cmd.WorkOrderID(), cmd.ShopID()); err != nil {
		return nil, err
	}

	li, err := lineitem.NewLineItem(cmd.LineItemID(), cmd.WorkOrderID(), cmd.ItemType(), cmd.Description(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if cmd.PartNumber() != "" {
		li.SetPartNumber(cmd.PartNumber())
	}
	if cmd.UnitPrice() != nil {
		if err = li.SetUnitPrice(*cmd.UnitPrice()); err != nil {
			return nil, err
		}
	}
	li.SetLabor(cmd.Hours(), cmd.Rate())

	if err = uow.LineItemRepository().Add(ctx, li); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return li, nil
}
