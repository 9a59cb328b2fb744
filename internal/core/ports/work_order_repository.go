package ports

import (
	"context"
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"
)

// ErrDuplicateWorkOrderNumber is returned by Add when the allocated work order
// number is already taken within the shop. Callers re-count and retry.
var ErrDuplicateWorkOrderNumber = errors.New("work order number already taken")

// WorkOrderRepository defines the persistence contract for work order
// aggregates. Every lookup takes the shop id explicitly; tenant scoping is
// never inferred inside the repository from ambient state.
type WorkOrderRepository interface {
	// Add persists a new work order. Returns ErrDuplicateWorkOrderNumber when
	// the (shop, number) pair already exists.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order. Status and stamped
	// timestamps go out in the same write.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// GetForShop retrieves a work order by id within the shop boundary.
	// An id outside the shop is indistinguishable from a missing one: both
	// return an ObjectNotFoundError. Inside a transaction the row is locked
	// until commit so concurrent transitions serialize.
	GetForShop(ctx context.Context, id, shopID kernel.UUID) (*workorder.WorkOrder, error)

	// GetAllForShop retrieves all of a shop's work orders, newest first.
	GetAllForShop(ctx context.Context, shopID kernel.UUID) ([]*workorder.WorkOrder, error)

	// GetAllInStatus retrieves work orders in the given status across all
	// shops. Used by background reporting jobs, not request handling.
	GetAllInStatus(ctx context.Context, status workorder.Status) ([]*workorder.WorkOrder, error)

	// CountCreatedSince counts a shop's work orders created at or after the
	// given instant. Feeds monthly number allocation.
	CountCreatedSince(ctx context.Context, shopID kernel.UUID, since time.Time) (int64, error)
}
