package shoprepo

import (
	"context"
	"errors"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/shop"
	"hangar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
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

// Get retrieves a shop by id.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
