package services

import (
	"hangar/internal/core/domain/model/lineitem"
	"hangar/internal/core/domain/model/timesheet"

	"github.com/shopspring/decimal"
)

// InvoiceTotals holds the three independent billing subtotals for one work
// order. It is a pure computation result; nothing in it is ever persisted.
type InvoiceTotals struct {
	// Labor is the sum over approved, billable timesheet entries of
	// hours x (entry rate, or the shop labor rate when unset).
	Labor decimal.Decimal

	// LaborHours is the hour count behind Labor.
	LaborHours decimal.Decimal

	// Parts is the sum over parts line items of quantity x unit price.
	Parts decimal.Decimal

	// Subcontract is the sum over subcontract line items of quantity x unit price.
	Subcontract decimal.Decimal
}

// Grand returns the sum of the three subtotals.
func (t InvoiceTotals) Grand() decimal.Decimal {
	return t.Labor.Add(t.Parts).Add(t.Subcontract)
}

// DisplayTotal returns the value shown to the customer: the grand total, or,
// when no detailed records billed at all, the work order's own estimates as a
// provisional figure. This fallback is a display-time decision and must never
// be written back to the work order.
func (t InvoiceTotals) DisplayTotal(estimatedLabor, estimatedParts decimal.Decimal) decimal.Decimal {
	if t.Labor.IsZero() && t.Parts.IsZero() && t.Subcontract.IsZero() {
		return estimatedLabor.Add(estimatedParts)
	}
	return t.Grand()
}

// BillingAggregator computes invoice totals from a work order's child records.
// It is stateless and side-effect free; callers load the records and invoke
// it on demand when rendering an invoice.
type BillingAggregator struct{}

// NewBillingAggregator creates the billing aggregation service.
func NewBillingAggregator() *BillingAggregator {
	return &BillingAggregator{}
}

// Aggregate sums the billable child records of one work order.
// Timesheet entries only count when approved and billable; line items bill by
// type. Unpriced line items contribute zero.
func (a *BillingAggregator) Aggregate(
	entries []*timesheet.Entry,
	items []*lineitem.LineItem,
	shopLaborRate decimal.Decimal,
) InvoiceTotals {
	totals := InvoiceTotals{
		Labor:       decimal.Zero,
		LaborHours:  decimal.Zero,
		Parts:       decimal.Zero,
		Subcontract: decimal.Zero,
	}

	for _, e := range entries {
		if e.Status() != timesheet.StatusApproved || !e.IsBillable() {
			continue
		}
		totals.Labor = totals.Labor.Add(e.Hours().Mul(e.BillableRate(shopLaborRate)))
		totals.LaborHours = totals.LaborHours.Add(e.Hours())
	}

	for _, li := range items {
		switch li.ItemType() {
		case lineitem.TypeParts:
			totals.Parts = totals.Parts.Add(li.Total())
		case lineitem.TypeSubcontract:
			totals.Subcontract = totals.Subcontract.Add(li.Total())
		default:
			// labor rows bill through timesheets
		}
	}

	return totals
}
