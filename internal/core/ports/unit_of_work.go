package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code manages the transaction lifecycle
// explicitly: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// WorkOrderRepository returns a WorkOrderRepository bound to the current transaction.
	WorkOrderRepository() WorkOrderRepository

	// TimesheetEntryRepository returns a TimesheetEntryRepository bound to the current transaction.
	TimesheetEntryRepository() TimesheetEntryRepository

	// LineItemRepository returns a LineItemRepository bound to the current transaction.
	LineItemRepository() LineItemRepository

	// ShopRepository returns a ShopRepository bound to the current transaction.
	ShopRepository() ShopRepository
}
