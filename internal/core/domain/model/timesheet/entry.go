// Package timesheet provides the TimesheetEntry aggregate: labor hours logged
// by a mechanic, optionally against a work order, with an approval workflow.
// Only approved, billable entries count toward a work order's labor total.
package timesheet

import (
	"errors"
	"fmt"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Status is the approval state of a timesheet entry.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state of every logged entry.
	StatusPending

	// StatusApproved entries feed billing when they are also billable.
	StatusApproved

	// StatusRejected entries never bill.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusRejected: "rejected",
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the status is a member of the closed set.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusApproved && s != StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause("timesheetStatus",
			fmt.Errorf("%d is not a valid timesheet status", int(s)))
	}
	return nil
}

// Entry is a labor record for one mechanic on one work date.
//
// Invariants:
//   - hours are strictly positive
//   - approval stamps approvedBy and approvedAt exactly once
//   - only pending entries can be approved or rejected
type Entry struct {
	id          kernel.UUID
	shopID      kernel.UUID
	userID      kernel.UUID
	workOrderID *kernel.UUID

	workDate    time.Time
	hours       decimal.Decimal
	rate        *decimal.Decimal
	isBillable  bool
	description string

	status     Status
	approvedBy *kernel.UUID
	approvedAt *time.Time

	isConstructed bool
}

// NewEntry logs a new pending, billable timesheet entry.
func NewEntry(
	id kernel.UUID,
	shopID kernel.UUID,
	userID kernel.UUID,
	workDate time.Time,
	hours decimal.Decimal,
) (*Entry, error) {
	e := &Entry{
		workDate:      workDate,
		status:        StatusPending,
		isBillable:    true,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShopID(shopID),
		e.setUserID(userID),
		e.setHours(hours),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs a timesheet entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	shopID kernel.UUID,
	userID kernel.UUID,
	workOrderID *kernel.UUID,
	workDate time.Time,
	hours decimal.Decimal,
	rate *decimal.Decimal,
	isBillable bool,
	description string,
	status Status,
	approvedBy *kernel.UUID,
	approvedAt *time.Time,
) (*Entry, error) {
	e := &Entry{
		workOrderID:   workOrderID,
		workDate:      workDate,
		rate:          rate,
		isBillable:    isBillable,
		description:   description,
		approvedBy:    approvedBy,
		approvedAt:    approvedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShopID(shopID),
		e.setUserID(userID),
		e.setHours(hours),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	e.status = status
	return e, nil
}

// Validate ensures the instance was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// ShopID returns the owning shop (tenant) identifier.
func (e *Entry) ShopID() kernel.UUID { return e.shopID }

// UserID returns the mechanic who logged the hours.
func (e *Entry) UserID() kernel.UUID { return e.userID }

// WorkOrderID returns the linked work order, nil for shop overhead time.
func (e *Entry) WorkOrderID() *kernel.UUID { return e.workOrderID }

// WorkDate returns the date the work was performed.
func (e *Entry) WorkDate() time.Time { return e.workDate }

// Hours returns the logged hours.
func (e *Entry) Hours() decimal.Decimal { return e.hours }

// Rate returns the entry-specific labor rate, nil to use the shop default.
func (e *Entry) Rate() *decimal.Decimal { return e.rate }

// IsBillable reports whether the hours bill to the customer.
func (e *Entry) IsBillable() bool { return e.isBillable }

// Description returns the free-form work description.
func (e *Entry) Description() string { return e.description }

// Status returns the approval state.
func (e *Entry) Status() Status { return e.status }

// ApprovedBy returns who approved the entry, nil while pending.
func (e *Entry) ApprovedBy() *kernel.UUID { return e.approvedBy }

// ApprovedAt returns when the entry was approved, nil while pending.
func (e *Entry) ApprovedAt() *time.Time { return e.approvedAt }

// AttachWorkOrder links the entry to a work order.
func (e *Entry) AttachWorkOrder(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	e.workOrderID = &workOrderID
	return nil
}

// SetRate overrides the shop labor rate for this entry.
func (e *Entry) SetRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%s is negative", rate))
	}
	e.rate = &rate
	return nil
}

// SetBillable marks the entry billable or not.
func (e *Entry) SetBillable(billable bool) {
	e.isBillable = billable
}

// SetDescription records what the hours were spent on.
func (e *Entry) SetDescription(description string) {
	e.description = description
}

// Approve marks a pending entry approved, stamping approver and time.
func (e *Entry) Approve(approverID kernel.UUID, now time.Time) error {
	if err := approverID.Validate(); err != nil {
		return err
	}
	if e.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("timesheetStatus",
			fmt.Errorf("cannot approve an entry in status '%s'", e.status))
	}

	e.status = StatusApproved
	e.approvedBy = &approverID
	at := now
	e.approvedAt = &at
	return nil
}

// Reject marks a pending entry rejected.
func (e *Entry) Reject() error {
	if e.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("timesheetStatus",
			fmt.Errorf("cannot reject an entry in status '%s'", e.status))
	}
	e.status = StatusRejected
	return nil
}

// BillableRate resolves the rate used for billing: the entry's own rate when
// set, otherwise the shop's default labor rate.
func (e *Entry) BillableRate(shopLaborRate decimal.Decimal) decimal.Decimal {
	if e.rate != nil {
		return *e.rate
	}
	return shopLaborRate
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	e.shopID = shopID
	return nil
}

func (e *Entry) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	e.userID = userID
	return nil
}

func (e *Entry) setHours(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%s is not greater than 0", hours))
	}
	e.hours = hours
	return nil
}
