package lineitemrepo

import (
	"context"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/lineitem"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLineItemRepository creates a new GORM line item repository.
func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line item.
func (r *GormLineItemRepository) Add(ctx context.Context, aggregate *lineitem.LineItem) error {
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

// GetAllForWorkOrder retrieves a work order's line items in creation order.
func (r *GormLineItemRepository) GetAllForWorkOrder(
	ctx context.Context, workOrderID kernel.UUID,
) ([]*lineitem.LineItem, error) {
	if err := workOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "work_order_id = ?", workOrderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*lineitem.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		items = append(items, item)
	}

	return items, nil
}
