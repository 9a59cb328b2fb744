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

// ErrCreateWorkOrderCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand opens a new draft work order against one aircraft.
// The work order number is allocated by the handler, not supplied here.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	shopID      kernel.UUID
	aircraftID  kernel.UUID
	customerID  *kernel.UUID
	title       string

	scheduledStart *time.Time
	scheduledEnd   *time.Time

	estimatedLabor decimal.Decimal
	estimatedParts decimal.Decimal

	hobbsIn *decimal.Decimal
	tachIn  *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a validated work order creation request.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	shopID kernel.UUID,
	aircraftID kernel.UUID,
	title string,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setShopID(shopID),
		cmd.setAircraftID(aircraftID),
		cmd.setTitle(title),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the pre-allocated identifier for the new work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ShopID returns the caller's tenant.
func (c CreateWorkOrderCommand) ShopID() kernel.UUID { return c.shopID }

// AircraftID returns the aircraft being worked on.
func (c CreateWorkOrderCommand) AircraftID() kernel.UUID { return c.aircraftID }

// CustomerID returns the optional customer, nil when unset.
func (c CreateWorkOrderCommand) CustomerID() *kernel.UUID { return c.customerID }

// Title returns the short work description.
func (c CreateWorkOrderCommand) Title() string { return c.title }

// ScheduledStart returns the optional planned start.
func (c CreateWorkOrderCommand) ScheduledStart() *time.Time { return c.scheduledStart }

// ScheduledEnd returns the optional planned end.
func (c CreateWorkOrderCommand) ScheduledEnd() *time.Time { return c.scheduledEnd }

// EstimatedLabor returns the labor estimate, zero when unset.
func (c CreateWorkOrderCommand) EstimatedLabor() decimal.Decimal { return c.estimatedLabor }

// EstimatedParts returns the parts estimate, zero when unset.
func (c CreateWorkOrderCommand) EstimatedParts() decimal.Decimal { return c.estimatedParts }

// HobbsIn returns the optional hobbs meter reading at arrival.
func (c CreateWorkOrderCommand) HobbsIn() *decimal.Decimal { return c.hobbsIn }

// TachIn returns the optional tach meter reading at arrival.
func (c CreateWorkOrderCommand) TachIn() *decimal.Decimal { return c.tachIn }

// WithCustomer links the new work order to a customer.
func (c CreateWorkOrderCommand) WithCustomer(customerID kernel.UUID) (CreateWorkOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateWorkOrderCommand{}, err
	}
	c.customerID = &customerID
	return c, nil
}

// WithSchedule sets the planned start and end.
func (c CreateWorkOrderCommand) WithSchedule(start, end *time.Time) CreateWorkOrderCommand {
	c.scheduledStart = start
	c.scheduledEnd = end
	return c
}

// WithEstimates sets the labor and parts estimates.
func (c CreateWorkOrderCommand) WithEstimates(labor, parts decimal.Decimal) (CreateWorkOrderCommand, error) {
	if labor.IsNegative() || parts.IsNegative() {
		return CreateWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("estimate",
			fmt.Errorf("estimates must not be negative, got labor %s parts %s", labor, parts))
	}
	c.estimatedLabor = labor
	c.estimatedParts = parts
	return c, nil
}

// WithMetersIn sets the arrival meter readings.
func (c CreateWorkOrderCommand) WithMetersIn(hobbs, tach *decimal.Decimal) CreateWorkOrderCommand {
	c.hobbsIn = hobbs
	c.tachIn = tach
	return c
}

func (c *CreateWorkOrderCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *CreateWorkOrderCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *CreateWorkOrderCommand) setAircraftID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.aircraftID = id
	return nil
}

func (c *CreateWorkOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}
