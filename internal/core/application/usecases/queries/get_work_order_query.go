package queries

import (
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves the full detail view of one work order.
type GetWorkOrderQuery struct {
	workOrderID kernel.UUID
	shopID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a detail query scoped to one shop.
func NewGetWorkOrderQuery(workOrderID, shopID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := errors.Join(workOrderID.Validate(), shopID.Validate()); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{
		workOrderID: workOrderID,
		shopID:      shopID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// WorkOrderID returns the work order being read.
func (q GetWorkOrderQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// ShopID returns the tenant boundary of the query.
func (q GetWorkOrderQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetWorkOrderQueryResponse is the detail view of one work order.
type GetWorkOrderQueryResponse struct {
	ID         kernel.UUID
	Number     string
	Title      string
	Status     string
	AircraftID kernel.UUID
	CustomerID *kernel.UUID

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time

	HobbsIn  *decimal.Decimal
	HobbsOut *decimal.Decimal
	TachIn   *decimal.Decimal
	TachOut  *decimal.Decimal

	EstimatedLabor decimal.Decimal
	EstimatedParts decimal.Decimal

	CreatedAt time.Time
}
