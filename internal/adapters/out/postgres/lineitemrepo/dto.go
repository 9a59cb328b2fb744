// Package lineitemrepo persists work order line items with GORM.
package lineitemrepo

import (
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDTO is the database row for one billing line.
type LineItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	ItemType    int       `gorm:"index"`
	Description string
	PartNumber  string

	Quantity  decimal.Decimal  `gorm:"type:numeric"`
	UnitPrice *decimal.Decimal `gorm:"type:numeric"`
	Hours     *decimal.Decimal `gorm:"type:numeric"`
	Rate      *decimal.Decimal `gorm:"type:numeric"`

	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(li *lineitem.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:          li.ID().Bytes(),
		WorkOrderID: li.WorkOrderID().Bytes(),
		ItemType:    int(li.ItemType()),
		Description: li.Description(),
		PartNumber:  li.PartNumber(),
		Quantity:    li.Quantity(),
		UnitPrice:   li.UnitPrice(),
		Hours:       li.Hours(),
		Rate:        li.Rate(),
	}
}

func toDomain(dto LineItemDTO) (*lineitem.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workOrderID, err := kernel.UUIDFromBytes(dto.WorkOrderID[:])
	if err != nil {
		return nil, err
	}

	return lineitem.RestoreLineItem(
		id, workOrderID, lineitem.Type(dto.ItemType),
		dto.Description, dto.PartNumber, dto.Quantity,
		dto.UnitPrice, dto.Hours, dto.Rate,
	)
}
