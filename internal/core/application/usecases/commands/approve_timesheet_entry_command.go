package commands

import (
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/guard"
)

// ErrApproveTimesheetEntryCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrApproveTimesheetEntryCommandIsNotConstructed = errors.New(
	"ApproveTimesheetEntryCommand must be created via NewApproveTimesheetEntryCommand constructor",
)

// ApproveTimesheetEntryCommand approves a pending timesheet entry, making it
// eligible for invoicing.
type ApproveTimesheetEntryCommand struct { //nolint:recvcheck //using for validation
	entryID    kernel.UUID
	shopID     kernel.UUID
	approverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveTimesheetEntryCommand creates a validated approval request.
func NewApproveTimesheetEntryCommand(
	entryID kernel.UUID,
	shopID kernel.UUID,
	approverID kernel.UUID,
) (ApproveTimesheetEntryCommand, error) {
	cmd := ApproveTimesheetEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setShopID(shopID),
		cmd.setApproverID(approverID),
	); err != nil {
		return ApproveTimesheetEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveTimesheetEntryCommand) Validate() error {
	return c.guard.Validate(ErrApproveTimesheetEntryCommandIsNotConstructed)
}

// EntryID returns the entry being approved.
func (c ApproveTimesheetEntryCommand) EntryID() kernel.UUID { return c.entryID }

// ShopID returns the caller's tenant.
func (c ApproveTimesheetEntryCommand) ShopID() kernel.UUID { return c.shopID }

// ApproverID returns who is approving.
func (c ApproveTimesheetEntryCommand) ApproverID() kernel.UUID { return c.approverID }

func (c *ApproveTimesheetEntryCommand) setEntryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.entryID = id
	return nil
}

func (c *ApproveTimesheetEntryCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *ApproveTimesheetEntryCommand) setApproverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.approverID = id
	return nil
}
