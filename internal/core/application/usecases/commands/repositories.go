// Package commands contains the business operations that modify system state.
// All commands follow the same pattern: a constructor-guarded command object,
// a handler taking a unit-of-work factory, and explicit transaction
// management (begin, deferred rollback, commit).
package commands

import (
	"context"

	"hangar/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the repositories
// they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// TimesheetRepoFactory provides access to the timesheet repository within a transaction.
	TimesheetRepoFactory interface {
		TimesheetEntryRepository() ports.TimesheetEntryRepository
	}

	// LineItemRepoFactory provides access to the line item repository within a transaction.
	LineItemRepoFactory interface {
		LineItemRepository() ports.LineItemRepository
	}

	// WorkOrderUoW manages transactions for work-order-only operations.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// TimesheetUoW manages transactions that touch timesheet entries and may
	// verify the linked work order.
	TimesheetUoW interface {
		TxManager
		TimesheetRepoFactory
		WorkOrderRepoFactory
	}

	// TimesheetUoWFactory creates new timesheet unit of work instances.
	TimesheetUoWFactory interface {
		Create() TimesheetUoW
	}

	// BillingUoW manages transactions that attach billing detail to a work order.
	BillingUoW interface {
		TxManager
		WorkOrderRepoFactory
		LineItemRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
