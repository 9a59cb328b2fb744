// Package lineitem provides the LineItem aggregate: a billing-detail row of
// type labor, parts, or subcontract attached to a work order. Line items feed
// the read-side billing aggregation; they carry no lifecycle of their own.
package lineitem

import (
	"errors"
	"fmt"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// Type classifies a line item for billing rollup.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeLabor rows describe work; hours usually bill through timesheets
	// instead, but flat-rate labor can be itemized here.
	TypeLabor

	// TypeParts rows bill quantity x unit price into the parts total.
	TypeParts

	// TypeSubcontract rows bill quantity x unit price into the subcontract total.
	TypeSubcontract
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "unknown",
		TypeLabor:       "labor",
		TypeParts:       "parts",
		TypeSubcontract: "subcontract",
	}
}

// TypeFromString parses the wire representation of a line item type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("itemType",
		fmt.Errorf("%q is not a valid line item type", s))
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the type is a member of the closed set.
func (t Type) Validate() error {
	if t != TypeLabor && t != TypeParts && t != TypeSubcontract {
		return errs.NewValueIsInvalidErrorWithCause("itemType",
			fmt.Errorf("%d is not a valid line item type", int(t)))
	}
	return nil
}

// LineItem is one billing-detail row on a work order.
type LineItem struct {
	id          kernel.UUID
	workOrderID kernel.UUID
	itemType    Type
	description string
	partNumber  string
	quantity    decimal.Decimal
	unitPrice   *decimal.Decimal
	hours       *decimal.Decimal
	rate        *decimal.Decimal

	isConstructed bool
}

// NewLineItem creates a line item with the given quantity (at least 1 unit of
// something; fractional quantities are fine for fluids and consumables).
func NewLineItem(
	id kernel.UUID,
	workOrderID kernel.UUID,
	itemType Type,
	description string,
	quantity decimal.Decimal,
) (*LineItem, error) {
	li := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		li.setID(id),
		li.setWorkOrderID(workOrderID),
		li.setItemType(itemType),
		li.setDescription(description),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreLineItem reconstructs a line item from persistence.
func RestoreLineItem(
	id kernel.UUID,
	workOrderID kernel.UUID,
	itemType Type,
	description string,
	partNumber string,
	quantity decimal.Decimal,
	unitPrice, hours, rate *decimal.Decimal,
) (*LineItem, error) {
	li, err := NewLineItem(id, workOrderID, itemType, description, quantity)
	if err != nil {
		return nil, err
	}
	li.partNumber = partNumber
	li.unitPrice = unitPrice
	li.hours = hours
	li.rate = rate
	return li, nil
}

// Validate ensures the instance was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID { return li.id }

// WorkOrderID returns the owning work order.
func (li *LineItem) WorkOrderID() kernel.UUID { return li.workOrderID }

// ItemType returns the billing classification.
func (li *LineItem) ItemType() Type { return li.itemType }

// Description returns the row description.
func (li *LineItem) Description() string { return li.description }

// PartNumber returns the part number, empty for non-parts rows.
func (li *LineItem) PartNumber() string { return li.partNumber }

// Quantity returns the billed quantity.
func (li *LineItem) Quantity() decimal.Decimal { return li.quantity }

// UnitPrice returns the price per unit, nil when not priced yet.
func (li *LineItem) UnitPrice() *decimal.Decimal { return li.unitPrice }

// Hours returns the optional labor hours on this row.
func (li *LineItem) Hours() *decimal.Decimal { return li.hours }

// Rate returns the optional labor rate on this row.
func (li *LineItem) Rate() *decimal.Decimal { return li.rate }

// SetPartNumber records the part number for a parts row.
func (li *LineItem) SetPartNumber(partNumber string) {
	li.partNumber = partNumber
}

// SetUnitPrice prices the row.
func (li *LineItem) SetUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", price))
	}
	li.unitPrice = &price
	return nil
}

// SetLabor records hours and rate for a labor row.
func (li *LineItem) SetLabor(hours, rate *decimal.Decimal) {
	li.hours = hours
	li.rate = rate
}

// Total returns quantity x unit price, or zero while the row is unpriced.
func (li *LineItem) Total() decimal.Decimal {
	if li.unitPrice == nil {
		return decimal.Zero
	}
	return li.quantity.Mul(*li.unitPrice)
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	li.workOrderID = workOrderID
	return nil
}

func (li *LineItem) setItemType(itemType Type) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	li.itemType = itemType
	return nil
}

func (li *LineItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	li.description = description
	return nil
}

func (li *LineItem) setQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
