package timesheetrepo

import (
	"context"
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/timesheet"
	"hangar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTimesheetEntryRepository implements TimesheetEntryRepository using GORM.
type GormTimesheetEntryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTimesheetEntryRepository creates a new GORM timesheet entry repository.
func NewGormTimesheetEntryRepository(db *gorm.DB, tracker aggregateTracker) *GormTimesheetEntryRepository {
	return &GormTimesheetEntryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new timesheet entry.
func (r *GormTimesheetEntryRepository) Add(ctx context.Context, aggregate *timesheet.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing timesheet entry. Approval metadata and status go
// out in the same UPDATE statement.
func (r *GormTimesheetEntryRepository) Update(ctx context.Context, aggregate *timesheet.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TimesheetEntryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForShop retrieves a timesheet entry by id within the shop boundary.
func (r *GormTimesheetEntryRepository) GetForShop(ctx context.Context, id, shopID kernel.UUID) (*timesheet.Entry, error) {
	if err := errors.Join(id.Validate(), shopID.Validate()); err != nil {
		return nil, err
	}

	var dto TimesheetEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND shop_id = ?", id.Bytes(), shopID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("timesheetEntry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBillableForWorkOrder retrieves the approved, billable entries of one
// work order, oldest work date first.
func (r *GormTimesheetEntryRepository) GetBillableForWorkOrder(
	ctx context.Context, workOrderID kernel.UUID,
) ([]*timesheet.Entry, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TimesheetEntryDTO
	err := r.db.WithContext(ctx).
		Order("work_date").
		Find(&dtos, "work_order_id = ? AND status = ? AND is_billable", workOrderID.Bytes(), int(timesheet.StatusApproved)).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*timesheet.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
