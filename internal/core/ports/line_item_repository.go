package ports

import (
	"context"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"
)

// LineItemRepository defines the persistence contract for work order line
// items. Tenant scoping happens through the owning work order.
type LineItemRepository interface {
	// Add persists a new line item.
	Add(ctx context.Context, aggregate *lineitem.LineItem) error

	// GetAllForWorkOrder retrieves a work order's line items in creation order.
	GetAllForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*lineitem.LineItem, error)
}
