package commands

import (
	"errors"
	"fmt"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLogTimesheetEntryCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrLogTimesheetEntryCommandIsNotConstructed = errors.New(
	"LogTimesheetEntryCommand must be created via NewLogTimesheetEntryCommand constructor",
)

// LogTimesheetEntryCommand records hours worked by a mechanic, optionally
// against a specific work order.
type LogTimesheetEntryCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	shopID   kernel.UUID
	userID   kernel.UUID
	workDate time.Time
	hours    decimal.Decimal

	workOrderID *kernel.UUID
	rate        *decimal.Decimal
	billable    bool
	description string

	guard guard.ConstructorGuard
}

// NewLogTimesheetEntryCommand creates a validated timesheet logging request.
// Entries start out billable.
func NewLogTimesheetEntryCommand(
	entryID kernel.UUID,
	shopID kernel.UUID,
	userID kernel.UUID,
	workDate time.Time,
	hours decimal.Decimal,
) (LogTimesheetEntryCommand, error) {
	cmd := LogTimesheetEntryCommand{
		billable: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setShopID(shopID),
		cmd.setUserID(userID),
		cmd.setWorkDate(workDate),
		cmd.setHours(hours),
	); err != nil {
		return LogTimesheetEntryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogTimesheetEntryCommand) Validate() error {
	return c.guard.Validate(ErrLogTimesheetEntryCommandIsNotConstructed)
}

// EntryID returns the pre-allocated identifier for the new entry.
func (c LogTimesheetEntryCommand) EntryID() kernel.UUID { return c.entryID }

// ShopID returns the caller's tenant.
func (c LogTimesheetEntryCommand) ShopID() kernel.UUID { return c.shopID }

// UserID returns the mechanic who worked the hours.
func (c LogTimesheetEntryCommand) UserID() kernel.UUID { return c.userID }

// WorkDate returns the day the hours were worked.
func (c LogTimesheetEntryCommand) WorkDate() time.Time { return c.workDate }

// Hours returns the hours worked.
func (c LogTimesheetEntryCommand) Hours() decimal.Decimal { return c.hours }

// WorkOrderID returns the optional linked work order, nil when unset.
func (c LogTimesheetEntryCommand) WorkOrderID() *kernel.UUID { return c.workOrderID }

// Rate returns the optional hourly rate override, nil when unset.
func (c LogTimesheetEntryCommand) Rate() *decimal.Decimal { return c.rate }

// Billable reports whether the entry counts towards invoicing.
func (c LogTimesheetEntryCommand) Billable() bool { return c.billable }

// Description returns the free-form work description.
func (c LogTimesheetEntryCommand) Description() string { return c.description }

// WithWorkOrder links the entry to a work order.
func (c LogTimesheetEntryCommand) WithWorkOrder(workOrderID kernel.UUID) (LogTimesheetEntryCommand, error) {
	if err := workOrderID.Validate(); err != nil {
		return LogTimesheetEntryCommand{}, err
	}
	c.workOrderID = &workOrderID
	return c, nil
}

// WithRate overrides the shop labor rate for this entry.
func (c LogTimesheetEntryCommand) WithRate(rate decimal.Decimal) (LogTimesheetEntryCommand, error) {
	if rate.IsNegative() {
		return LogTimesheetEntryCommand{}, errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("rate must not be negative, got %s", rate))
	}
	c.rate = &rate
	return c, nil
}

// WithBillable marks the entry billable or not.
func (c LogTimesheetEntryCommand) WithBillable(billable bool) LogTimesheetEntryCommand {
	c.billable = billable
	return c
}

// WithDescription sets the work description.
func (c LogTimesheetEntryCommand) WithDescription(description string) LogTimesheetEntryCommand {
	c.description = description
	return c
}

func (c *LogTimesheetEntryCommand) setEntryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.entryID = id
	return nil
}

func (c *LogTimesheetEntryCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *LogTimesheetEntryCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *LogTimesheetEntryCommand) setWorkDate(workDate time.Time) error {
	if workDate.IsZero() {
		return errs.NewValueIsRequiredError("workDate")
	}
	c.workDate = workDate
	return nil
}

func (c *LogTimesheetEntryCommand) setHours(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("hours must be positive, got %s", hours))
	}
	c.hours = hours
	return nil
}
