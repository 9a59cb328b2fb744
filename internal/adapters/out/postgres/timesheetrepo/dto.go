// Package timesheetrepo persists timesheet entry aggregates with GORM.
package timesheetrepo

import (
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/timesheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimesheetEntryDTO is the database row for one timesheet entry.
type TimesheetEntryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID  `gorm:"type:uuid;index"`
	UserID      uuid.UUID  `gorm:"type:uuid;index"`
	WorkOrderID *uuid.UUID `gorm:"type:uuid;index"`

	WorkDate    time.Time
	Hours       decimal.Decimal  `gorm:"type:numeric"`
	Rate        *decimal.Decimal `gorm:"type:numeric"`
	IsBillable  bool
	Description string
	Status      int `gorm:"index"`

	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
}

// TableName overrides GORM's default naming to use "timesheet_entries".
func (TimesheetEntryDTO) TableName() string {
	return "timesheet_entries"
}

func fromDomain(e *timesheet.Entry) TimesheetEntryDTO {
	var workOrderID *uuid.UUID
	if id := e.WorkOrderID(); id != nil {
		raw := id.Bytes()
		workOrderID = &raw
	}
	var approvedBy *uuid.UUID
	if id := e.ApprovedBy(); id != nil {
		raw := id.Bytes()
		approvedBy = &raw
	}

	return TimesheetEntryDTO{
		ID:          e.ID().Bytes(),
		ShopID:      e.ShopID().Bytes(),
		UserID:      e.UserID().Bytes(),
		WorkOrderID: workOrderID,
		WorkDate:    e.WorkDate(),
		Hours:       e.Hours(),
		Rate:        e.Rate(),
		IsBillable:  e.IsBillable(),
		Description: e.Description(),
		Status:      int(e.Status()),
		ApprovedBy:  approvedBy,
		ApprovedAt:  e.ApprovedAt(),
	}
}

func toDomain(dto TimesheetEntryDTO) (*timesheet.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var workOrderID *kernel.UUID
	if dto.WorkOrderID != nil {
		woID, woErr := kernel.UUIDFromBytes((*dto.WorkOrderID)[:])
		if woErr != nil {
			return nil, woErr
		}
		workOrderID = &woID
	}

	var approvedBy *kernel.UUID
	if dto.ApprovedBy != nil {
		abID, abErr := kernel.UUIDFromBytes((*dto.ApprovedBy)[:])
		if abErr != nil {
			return nil, abErr
		}
		approvedBy = &abID
	}

	return timesheet.RestoreEntry(
		id, shopID, userID, workOrderID,
		dto.WorkDate, dto.Hours, dto.Rate, dto.IsBillable, dto.Description,
		timesheet.Status(dto.Status), approvedBy, dto.ApprovedAt,
	)
}
