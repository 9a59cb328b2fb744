// Package workorderrepo persists work order aggregates with GORM.
// It maps between the private-field domain aggregate and a flat relational
// row, and translates database errors into domain-level ones.
package workorderrepo

import (
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrderDTO is the database row for one work order. The (shop_id, number)
// pair is unique; number allocation relies on the database rejecting
// duplicates under concurrency.
type WorkOrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID     uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:idx_shop_number"`
	AircraftID uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Number     string     `gorm:"uniqueIndex:idx_shop_number"`
	Title      string
	Status     int `gorm:"index"`

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time

	HobbsIn  *decimal.Decimal `gorm:"type:numeric"`
	HobbsOut *decimal.Decimal `gorm:"type:numeric"`
	TachIn   *decimal.Decimal `gorm:"type:numeric"`
	TachOut  *decimal.Decimal `gorm:"type:numeric"`

	EstimatedLabor decimal.Decimal `gorm:"type:numeric"`
	EstimatedParts decimal.Decimal `gorm:"type:numeric"`

	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	var customerID *uuid.UUID
	if id := wo.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return WorkOrderDTO{
		ID:             wo.ID().Bytes(),
		ShopID:         wo.ShopID().Bytes(),
		AircraftID:     wo.AircraftID().Bytes(),
		CustomerID:     customerID,
		Number:         wo.Number().String(),
		Title:          wo.Title(),
		Status:         int(wo.Status()),
		ScheduledStart: wo.ScheduledStart(),
		ScheduledEnd:   wo.ScheduledEnd(),
		ActualStart:    wo.ActualStart(),
		ActualEnd:      wo.ActualEnd(),
		HobbsIn:        wo.HobbsIn(),
		HobbsOut:       wo.HobbsOut(),
		TachIn:         wo.TachIn(),
		TachOut:        wo.TachOut(),
		EstimatedLabor: wo.EstimatedLabor(),
		EstimatedParts: wo.EstimatedParts(),
		CreatedAt:      wo.CreatedAt(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	aircraftID, err := kernel.UUIDFromBytes(dto.AircraftID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	number, err := workorder.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id, shopID, aircraftID, customerID,
		number, dto.Title, workorder.Status(dto.Status),
		dto.ScheduledStart, dto.ScheduledEnd,
		dto.ActualStart, dto.ActualEnd,
		dto.HobbsIn, dto.HobbsOut, dto.TachIn, dto.TachOut,
		dto.EstimatedLabor, dto.EstimatedParts,
		dto.CreatedAt,
	)
}
