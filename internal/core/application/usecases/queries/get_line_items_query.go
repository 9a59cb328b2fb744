package queries

import (
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLineItemsQueryIsNotConstructed = errors.New(
	"GetLineItemsQuery must be created via NewGetLineItemsQuery constructor",
)

// GetLineItemsQuery retrieves a work order's billing lines.
type GetLineItemsQuery struct {
	workOrderID kernel.UUID
	shopID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLineItemsQuery creates a line item query scoped to one shop.
func NewGetLineItemsQuery(workOrderID, shopID kernel.UUID) (GetLineItemsQuery, error) {
	if err := errors.Join(workOrderID.Validate(), shopID.Validate()); err != nil {
		return GetLineItemsQuery{}, err
	}
	return GetLineItemsQuery{
		workOrderID: workOrderID,
		shopID:      shopID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLineItemsQueryIsNotConstructed)
}

// WorkOrderID returns the owning work order.
func (q GetLineItemsQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// ShopID returns the tenant boundary of the query.
func (q GetLineItemsQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetLineItemsQueryResponse is one billing line of a work order.
type GetLineItemsQueryResponse struct {
	ID          kernel.UUID
	ItemType    string
	Description string
	PartNumber  string
	Quantity    decimal.Decimal
	UnitPrice   *decimal.Decimal
	Total       decimal.Decimal
}
