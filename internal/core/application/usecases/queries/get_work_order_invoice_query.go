package queries

import (
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkOrderInvoiceQueryIsNotConstructed = errors.New(
	"GetWorkOrderInvoiceQuery must be created via NewGetWorkOrderInvoiceQuery constructor",
)

// GetWorkOrderInvoiceQuery computes the invoice preview for one work order.
// Nothing is persisted; the totals are recomputed from the child records on
// every call.
type GetWorkOrderInvoiceQuery struct {
	workOrderID kernel.UUID
	shopID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderInvoiceQuery creates an invoice query scoped to one shop.
func NewGetWorkOrderInvoiceQuery(workOrderID, shopID kernel.UUID) (GetWorkOrderInvoiceQuery, error) {
	if err := errors.Join(workOrderID.Validate(), shopID.Validate()); err != nil {
		return GetWorkOrderInvoiceQuery{}, err
	}
	return GetWorkOrderInvoiceQuery{
		workOrderID: workOrderID,
		shopID:      shopID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderInvoiceQueryIsNotConstructed)
}

// WorkOrderID returns the work order being invoiced.
func (q GetWorkOrderInvoiceQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// ShopID returns the tenant boundary of the query.
func (q GetWorkOrderInvoiceQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetWorkOrderInvoiceQueryResponse is the rendered invoice preview.
// IsEstimated reports that no detailed records billed and the total carries
// the work order's estimates instead.
type GetWorkOrderInvoiceQueryResponse struct {
	WorkOrderID     kernel.UUID
	WorkOrderNumber string
	InvoiceNumber   string
	InvoiceDate     time.Time
	Status          string

	Labor       decimal.Decimal
	LaborHours  decimal.Decimal
	Parts       decimal.Decimal
	Subcontract decimal.Decimal
	Total       decimal.Decimal

	EstimatedLabor decimal.Decimal
	EstimatedParts decimal.Decimal
	IsEstimated    bool
}
