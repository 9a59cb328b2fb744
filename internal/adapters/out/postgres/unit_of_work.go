// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work wraps one business transaction: Begin opens a database
// transaction, the repository accessors hand out repositories bound to it,
// and Commit or Rollback closes it. Aggregates touched during the
// transaction are tracked for post-commit processing.
package postgres

import (
	"context"

	"hangar/internal/adapters/out/postgres/lineitemrepo"
	"hangar/internal/adapters/out/postgres/shoprepo"
	"hangar/internal/adapters/out/postgres/timesheetrepo"
	"hangar/internal/adapters/out/postgres/workorderrepo"
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance so concurrent
// operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories. Repositories obtained from it run inside the transaction
// once Begin has been called, which is what makes the row locks taken by
// GetForShop hold until Commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WorkOrderRepository returns a work order repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return workorderrepo.NewGormWorkOrderRepository(uow.conn(), uow)
}

// TimesheetEntryRepository returns a timesheet repository bound to the
// current transaction.
func (uow *GormUnitOfWork) TimesheetEntryRepository() ports.TimesheetEntryRepository {
	return timesheetrepo.NewGormTimesheetEntryRepository(uow.conn(), uow)
}

// LineItemRepository returns a line item repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	return lineitemrepo.NewGormLineItemRepository(uow.conn(), uow)
}

// ShopRepository returns a shop repository bound to the current transaction.
func (uow *GormUnitOfWork) ShopRepository() ports.ShopRepository {
	return shoprepo.NewGormShopRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
