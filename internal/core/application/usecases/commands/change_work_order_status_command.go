package commands

import (
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/pkg/guard"
)

// ErrChangeWorkOrderStatusCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand requests a lifecycle transition for one work
// order within one shop. The target status must be a member of the status
// set; whether it is reachable from the current status is decided by the
// aggregate against the transition table, not here.
//
// Example:
//
//	cmd, err := NewChangeWorkOrderStatusCommand(workOrderID, shopID, workorder.InProgress)
//	if err != nil {
//	    return err
//	}
//	wo, err := handler.Handle(ctx, cmd)
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	shopID       kernel.UUID
	targetStatus workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a validated transition request.
// The shop id is the caller's tenant, resolved before the command is built.
func NewChangeWorkOrderStatusCommand(
	workOrderID kernel.UUID,
	shopID kernel.UUID,
	targetStatus workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	cmd := ChangeWorkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setShopID(shopID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// WorkOrderID returns the work order to transition.
func (c ChangeWorkOrderStatusCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ShopID returns the caller's tenant.
func (c ChangeWorkOrderStatusCommand) ShopID() kernel.UUID {
	return c.shopID
}

// TargetStatus returns the requested status.
func (c ChangeWorkOrderStatusCommand) TargetStatus() workorder.Status {
	return c.targetStatus
}

func (c *ChangeWorkOrderStatusCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *ChangeWorkOrderStatusCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *ChangeWorkOrderStatusCommand) setTargetStatus(status workorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.targetStatus = status
	return nil
}
