package workorder

import (
	"errors"
	"fmt"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
// created through NewWorkOrder or RestoreWorkOrder.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

// WorkOrder is the aggregate root for a billable unit of maintenance work
// against one aircraft. It owns the status lifecycle; all status mutation goes
// through ChangeStatus so the transition table and timestamp stamping rules
// cannot be bypassed.
//
// Invariants:
//   - id, shop id, aircraft id and number are valid and immutable
//   - status is always a member of the closed status set
//   - actualStart is stamped at most once, on first entry to in_progress
//   - actualEnd always reflects the most recent entry to completed
//   - meter out readings are never below the corresponding in readings
//
// Work orders are never physically deleted; cancellation is a status.
type WorkOrder struct {
	id         kernel.UUID
	shopID     kernel.UUID
	aircraftID kernel.UUID
	customerID *kernel.UUID

	number Number
	title  string
	status Status

	scheduledStart *time.Time
	scheduledEnd   *time.Time
	actualStart    *time.Time
	actualEnd      *time.Time

	hobbsIn  *decimal.Decimal
	hobbsOut *decimal.Decimal
	tachIn   *decimal.Decimal
	tachOut  *decimal.Decimal

	estimatedLabor decimal.Decimal
	estimatedParts decimal.Decimal

	createdAt time.Time

	isConstructed bool
}

// NewWorkOrder creates a work order in draft status with a freshly allocated
// number. The shop id is the tenant boundary and is threaded explicitly; it is
// never inferred from ambient session state inside the domain.
func NewWorkOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	aircraftID kernel.UUID,
	number Number,
	title string,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Draft,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setShopID(shopID),
		wo.setAircraftID(aircraftID),
		wo.setNumber(number),
		wo.setTitle(title),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// RestoreWorkOrder reconstructs a work order from persistence.
// Unlike NewWorkOrder it accepts any valid status and the stored timestamps.
func RestoreWorkOrder(
	id kernel.UUID,
	shopID kernel.UUID,
	aircraftID kernel.UUID,
	customerID *kernel.UUID,
	number Number,
	title string,
	status Status,
	scheduledStart, scheduledEnd *time.Time,
	actualStart, actualEnd *time.Time,
	hobbsIn, hobbsOut, tachIn, tachOut *decimal.Decimal,
	estimatedLabor, estimatedParts decimal.Decimal,
	createdAt time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		customerID:     customerID,
		scheduledStart: scheduledStart,
		scheduledEnd:   scheduledEnd,
		actualStart:    actualStart,
		actualEnd:      actualEnd,
		hobbsIn:        hobbsIn,
		hobbsOut:       hobbsOut,
		tachIn:         tachIn,
		tachOut:        tachOut,
		estimatedLabor: estimatedLabor,
		estimatedParts: estimatedParts,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setShopID(shopID),
		wo.setAircraftID(aircraftID),
		wo.setNumber(number),
		wo.setTitle(title),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	wo.status = status
	return wo, nil
}

// Validate ensures the instance was created through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by identifier.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID { return w.id }

// ShopID returns the owning shop (tenant) identifier.
func (w *WorkOrder) ShopID() kernel.UUID { return w.shopID }

// AircraftID returns the identifier of the aircraft being worked on.
func (w *WorkOrder) AircraftID() kernel.UUID { return w.aircraftID }

// CustomerID returns the optional customer identifier, nil when unset.
func (w *WorkOrder) CustomerID() *kernel.UUID { return w.customerID }

// Number returns the human-facing work order number.
func (w *WorkOrder) Number() Number { return w.number }

// Title returns the short description of the work.
func (w *WorkOrder) Title() string { return w.title }

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() Status { return w.status }

// ScheduledStart returns the planned start time, nil when unplanned.
func (w *WorkOrder) ScheduledStart() *time.Time { return w.scheduledStart }

// ScheduledEnd returns the planned end time, nil when unplanned.
func (w *WorkOrder) ScheduledEnd() *time.Time { return w.scheduledEnd }

// ActualStart returns when work first entered in_progress, nil before that.
func (w *WorkOrder) ActualStart() *time.Time { return w.actualStart }

// ActualEnd returns when the order most recently entered completed.
func (w *WorkOrder) ActualEnd() *time.Time { return w.actualEnd }

// HobbsIn returns the hobbs meter reading at work start.
func (w *WorkOrder) HobbsIn() *decimal.Decimal { return w.hobbsIn }

// HobbsOut returns the hobbs meter reading at work end.
func (w *WorkOrder) HobbsOut() *decimal.Decimal { return w.hobbsOut }

// TachIn returns the tach meter reading at work start.
func (w *WorkOrder) TachIn() *decimal.Decimal { return w.tachIn }

// TachOut returns the tach meter reading at work end.
func (w *WorkOrder) TachOut() *decimal.Decimal { return w.tachOut }

// EstimatedLabor returns the labor estimate recorded at creation.
func (w *WorkOrder) EstimatedLabor() decimal.Decimal { return w.estimatedLabor }

// EstimatedParts returns the parts estimate recorded at creation.
func (w *WorkOrder) EstimatedParts() decimal.Decimal { return w.estimatedParts }

// CreatedAt returns the creation timestamp.
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }

// AssignCustomer links the work order to a customer.
func (w *WorkOrder) AssignCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	w.customerID = &customerID
	return nil
}

// Plan records the scheduled start and end of the work.
func (w *WorkOrder) Plan(start, end *time.Time) {
	w.scheduledStart = start
	w.scheduledEnd = end
}

// Estimate records the labor and parts estimates. These feed the provisional
// invoice total when no detailed line items exist yet; they are never touched
// by the lifecycle logic after creation.
func (w *WorkOrder) Estimate(labor, parts decimal.Decimal) error {
	if labor.IsNegative() || parts.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("estimate",
			fmt.Errorf("estimates must not be negative, got labor %s parts %s", labor, parts))
	}
	w.estimatedLabor = labor
	w.estimatedParts = parts
	return nil
}

// RecordMetersIn captures the aircraft meter readings when the aircraft
// arrives. Either reading may be nil.
func (w *WorkOrder) RecordMetersIn(hobbs, tach *decimal.Decimal) {
	w.hobbsIn = hobbs
	w.tachIn = tach
}

// RecordMetersOut captures the meter readings at work end.
// When the corresponding in reading is present, out must not be below it.
func (w *WorkOrder) RecordMetersOut(hobbs, tach *decimal.Decimal) error {
	if err := validateMeterPair("hobbsOut", w.hobbsIn, hobbs); err != nil {
		return err
	}
	if err := validateMeterPair("tachOut", w.tachIn, tach); err != nil {
		return err
	}
	if hobbs != nil {
		w.hobbsOut = hobbs
	}
	if tach != nil {
		w.tachOut = tach
	}
	return nil
}

func validateMeterPair(param string, in, out *decimal.Decimal) error {
	if in == nil || out == nil {
		return nil
	}
	if out.LessThan(*in) {
		return errs.NewValueIsInvalidErrorWithCause(param,
			fmt.Errorf("%s is below the in reading %s", out, in))
	}
	return nil
}

// ChangeStatus moves the work order to target per the transition table,
// stamping execution timestamps as a side effect of the same mutation:
//
//   - entering in_progress stamps actualStart, but only if it has never been
//     set; bouncing between in_progress and pending_parts does not re-stamp
//   - entering completed stamps actualEnd unconditionally, so it always
//     reflects the most recent completion
//
// The caller persists status and stamps in a single write.
func (w *WorkOrder) ChangeStatus(target Status, now time.Time) error {
	next, err := w.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if next == InProgress && w.actualStart == nil {
		start := now
		w.actualStart = &start
	}
	if next == Completed {
		end := now
		w.actualEnd = &end
	}

	w.status = next
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	w.shopID = shopID
	return nil
}

func (w *WorkOrder) setAircraftID(aircraftID kernel.UUID) error {
	if err := aircraftID.Validate(); err != nil {
		return err
	}
	w.aircraftID = aircraftID
	return nil
}

func (w *WorkOrder) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	w.number = number
	return nil
}

func (w *WorkOrder) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	w.title = title
	return nil
}
