package ports

import (
	"context"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/timesheet"
)

// TimesheetEntryRepository defines the persistence contract for timesheet
// entries. Lookups are tenant-scoped by explicit shop id.
type TimesheetEntryRepository interface {
	// Add persists a new timesheet entry.
	Add(ctx context.Context, aggregate *timesheet.Entry) error

	// Update persists changes to an existing entry (approval, rejection).
	Update(ctx context.Context, aggregate *timesheet.Entry) error

	// GetForShop retrieves an entry by id within the shop boundary.
	GetForShop(ctx context.Context, id, shopID kernel.UUID) (*timesheet.Entry, error)

	// GetBillableForWorkOrder retrieves the approved, billable entries of one
	// work order, oldest work date first. Feeds the billing aggregation.
	GetBillableForWorkOrder(ctx context.Context, workOrderID kernel.UUID) ([]*timesheet.Entry, error)
}
