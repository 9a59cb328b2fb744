package commands

import (
	"errors"
	"fmt"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/pkg/errs"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAddLineItemCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand attaches a parts, labor or subcontract line to a work
// order. Quantity defaults to 1 when the caller passes zero.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID  kernel.UUID
	workOrderID kernel.UUID
	shopID      kernel.UUID
	itemType    lineitem.Type
	description string
	quantity    decimal.Decimal

	partNumber string
	unitPrice  *decimal.Decimal
	hours      *decimal.Decimal
	rate       *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a validated line item request.
func NewAddLineItemCommand(
	lineItemID kernel.UUID,
	workOrderID kernel.UUID,
	shopID kernel.UUID,
	itemType lineitem.Type,
	description string,
	quantity decimal.Decimal,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}

	if err := errors.Join(
		cmd.setLineItemID(lineItemID),
		cmd.setWorkOrderID(workOrderID),
		cmd.setShopID(shopID),
		cmd.setItemType(itemType),
		cmd.setDescription(description),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// LineItemID returns the pre-allocated identifier for the new line item.
func (c AddLineItemCommand) LineItemID() kernel.UUID { return c.lineItemID }

// WorkOrderID returns the owning work order.
func (c AddLineItemCommand) WorkOrderID() kernel.UUID { return c.workOrderID }

// ShopID returns the caller's tenant.
func (c AddLineItemCommand) ShopID() kernel.UUID { return c.shopID }

// ItemType returns the billing category.
func (c AddLineItemCommand) ItemType() lineitem.Type { return c.itemType }

// Description returns the line description.
func (c AddLineItemCommand) Description() string { return c.description }

// Quantity returns the billed quantity.
func (c AddLineItemCommand) Quantity() decimal.Decimal { return c.quantity }

// PartNumber returns the optional part reference, empty when unset.
func (c AddLineItemCommand) PartNumber() string { return c.partNumber }

// UnitPrice returns the optional unit price, nil when unset.
func (c AddLineItemCommand) UnitPrice() *decimal.Decimal { return c.unitPrice }

// Hours returns the optional labor hours detail.
func (c AddLineItemCommand) Hours() *decimal.Decimal { return c.hours }

// Rate returns the optional labor rate detail.
func (c AddLineItemCommand) Rate() *decimal.Decimal { return c.rate }

// WithPartNumber sets the part reference.
func (c AddLineItemCommand) WithPartNumber(partNumber string) AddLineItemCommand {
	c.partNumber = partNumber
	return c
}

// WithUnitPrice sets the unit price.
func (c AddLineItemCommand) WithUnitPrice(price decimal.Decimal) (AddLineItemCommand, error) {
	if price.IsNegative() {
		return AddLineItemCommand{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("unit price must not be negative, got %s", price))
	}
	c.unitPrice = &price
	return c, nil
}

// WithLabor sets the hours and rate detail carried on labor lines.
func (c AddLineItemCommand) WithLabor(hours, rate *decimal.Decimal) AddLineItemCommand {
	c.hours = hours
	c.rate = rate
	return c
}

func (c *AddLineItemCommand) setLineItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lineItemID = id
	return nil
}

func (c *AddLineItemCommand) setWorkOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workOrderID = id
	return nil
}

func (c *AddLineItemCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *AddLineItemCommand) setItemType(itemType lineitem.Type) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	c.itemType = itemType
	return nil
}

func (c *AddLineItemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("quantity must be positive, got %s", quantity))
	}
	c.quantity = quantity
	return nil
}
