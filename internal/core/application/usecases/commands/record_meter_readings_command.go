package commands

import (
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRecordMeterReadingsCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrRecordMeterReadingsCommandIsNotConstructed = errors.New(
	"RecordMeterReadingsCommand must be created via NewRecordMeterReadingsCommand constructor",
)

// RecordMeterReadingsCommand updates the hobbs and tach readings on a work
// order. In readings are taken at arrival, out readings at release.
type RecordMeterReadingsCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	shopID      kernel.UUID

	hobbsIn  *decimal.Decimal
	hobbsOut *decimal.Decimal
	tachIn   *decimal.Decimal
	tachOut  *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordMeterReadingsCommand creates a validated meter update request.
// At least one reading must be supplied.
func NewRecordMeterReadingsCommand(
	workOrderID kernel.UUID,
	shopID kernel.UUID,
	hobbsIn, hobbsOut, tachIn, tachOut *decimal.Decimal,
) (RecordMeterReadingsCommand, error) {
	cmd := RecordMeterReadingsCommand{
		hobbsIn:  hobbsIn,
		hobbsOut: hobbsOut,
		tachIn:   tachIn,
		tachOut:  tachOut,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setShopID(shopID),
	); err != nil {
		return RecordMeterReadingsCommand{}, err
	}

	if hobbsIn == nil && hobbsOut == nil && tachIn == nil && tachOut == nil {
		return RecordMeterReadingsCommand{}, errs.NewValueIsRequiredError("readings")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordMeterReadingsCommand) Validate() error {
	return c.guard.Validate(ErrRecordMeterReadingsCommandIsNotConstructed)
}

// WorkOrderID returns the work order being updated.
func (c RecordMeterReadingsCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ShopID returns the caller's tenant.
func (c RecordMeterReadingsCommand) ShopID() kernel.UUID { return c.shopID }

// HobbsIn returns the arrival hobbs reading, nil when not updated.
func (c RecordMeterReadingsCommand) HobbsIn() *decimal.Decimal { return c.hobbsIn }

// HobbsOut returns the release hobbs reading, nil when not updated.
func (c RecordMeterReadingsCommand) HobbsOut() *decimal.Decimal { return c.hobbsOut }

// TachIn returns the arrival tach reading, nil when not updated.
func (c RecordMeterReadingsCommand) TachIn() *decimal.Decimal { return c.tachIn }

// TachOut returns the release tach reading, nil when not updated.
func (c RecordMeterReadingsCommand) TachOut() *decimal.Decimal { return c.tachOut }

func (c *RecordMeterReadingsCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *RecordMeterReadingsCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}
