package queries

import (
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves a shop's work orders for board and list views.
// Results are newest first.
type GetWorkOrdersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a query scoped to one shop.
func NewGetWorkOrdersQuery(shopID kernel.UUID) (GetWorkOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetWorkOrdersQuery{}, err
	}
	return GetWorkOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// ShopID returns the tenant boundary of the query.
func (q GetWorkOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetWorkOrdersQueryResponse is one row of the work order list.
type GetWorkOrdersQueryResponse struct {
	ID         kernel.UUID
	Number     string
	Title      string
	Status     string
	AircraftID kernel.UUID
	CreatedAt  time.Time
}
